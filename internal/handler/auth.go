package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"gamebay/internal/market"
)

func (s *Server) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", withView(c, nil))
}

func (s *Server) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := s.market.Register(c.Request.Context(), username, email, password)
	switch {
	case err == nil:
		flash(c, "Registered successfully!")
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, market.ErrUsernameTaken),
		errors.Is(err, market.ErrEmailTaken),
		errors.Is(err, market.ErrInvalidInput):
		c.HTML(http.StatusBadRequest, "register.tmpl", withView(c, ViewData{
			"Error": err.Error(),
			"Form":  ViewData{"Username": username, "Email": email},
		}))
	default:
		s.logger.Error("register failed", "error", err)
		c.HTML(http.StatusInternalServerError, "register.tmpl", withView(c, ViewData{
			"Error": "Something went wrong, try again",
		}))
	}
}

func (s *Server) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", withView(c, nil))
}

func (s *Server) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	a, err := s.market.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, market.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.tmpl", withView(c, ViewData{
				"Error": "Invalid credentials",
			}))
			return
		}
		s.logger.Error("login failed", "error", err)
		c.HTML(http.StatusInternalServerError, "login.tmpl", withView(c, ViewData{
			"Error": "Something went wrong, try again",
		}))
		return
	}

	establishSession(c, a.ID, a.Username)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}
