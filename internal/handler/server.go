// Package handler wires the marketplace service to gin routes and
// server-rendered views. Auth is cookie-session based; user feedback
// goes through one-shot flash messages in the same session.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamebay/internal/config"
	"gamebay/internal/market"
)

type ViewData map[string]any

const (
	sessAccountID = "account_id"
	sessUsername  = "username"
	sessFlash     = "flash"
)

type Server struct {
	cfg    *config.Config
	market *market.Service
	db     *gorm.DB
	logger *slog.Logger
}

func New(cfg *config.Config, m *market.Service, db *gorm.DB, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, market: m, db: db, logger: logger}
}

func (s *Server) Routes(r *gin.Engine) {
	r.GET("/health", s.Health)
	r.GET("/listings.json", s.ListingsJSON)

	r.GET("/", s.Index)
	r.GET("/register", s.RegisterForm)
	r.POST("/register", s.Register)
	r.GET("/login", s.LoginForm)
	r.POST("/login", s.Login)
	r.GET("/logout", mustLogin(), s.Logout)
	r.GET("/confirm_payment", s.ConfirmPayment)

	r.GET("/add_listing", mustLogin(), s.AddListingForm)
	r.POST("/add_listing", mustLogin(), s.AddListing)
	r.POST("/buy/:id", mustLogin(), s.Buy)
	r.GET("/profile", mustLogin(), s.Profile)
}

// ---------- auth middleware ----------

func mustLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get(sessAccountID) == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentAccountID(c *gin.Context) (uint, bool) {
	sess := sessions.Default(c)
	id, ok := sess.Get(sessAccountID).(uint)
	return id, ok
}

// ---------- session helpers ----------

func establishSession(c *gin.Context, accountID uint, username string) {
	sess := sessions.Default(c)
	sess.Set(sessAccountID, accountID)
	sess.Set(sessUsername, username)
	_ = sess.Save()
}

func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.Set(sessFlash, msg)
	_ = sess.Save()
}

// withView attaches the logged-in username and pops the pending flash
// message, if any.
func withView(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	sess := sessions.Default(c)
	if v := sess.Get(sessUsername); v != nil {
		data["Username"] = v.(string)
	}
	if v := sess.Get(sessFlash); v != nil {
		data["Flash"] = v.(string)
		sess.Delete(sessFlash)
		_ = sess.Save()
	}
	return data
}

// ---------- ops endpoints ----------

func (s *Server) Health(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
