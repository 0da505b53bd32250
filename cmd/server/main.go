package main

import (
	"html/template"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gamebay/internal/config"
	"gamebay/internal/db"
	"gamebay/internal/handler"
	"gamebay/internal/market"
	"gamebay/internal/payment"
	"gamebay/internal/repository"
)

func main() {
	// load .env from the current dir, the parent and the repo root
	// (covers running from cmd/server)
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	gdb := db.MustOpen(cfg.DatabaseDSN)
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	store := repository.New(gdb, logger)
	gateway := payment.NewClient(cfg.YookassaShopID, cfg.YookassaSecretKey,
		payment.WithLogger(logger))
	svc := market.NewService(store, gateway, cfg.BaseURL, logger)

	r := gin.Default()
	r.MaxMultipartMemory = 16 << 20 // 16MB max upload

	r.Static("/uploads", cfg.UploadDir)
	r.Static("/static", "./static")

	cookies := cookie.NewStore([]byte(cfg.SessionSecret))
	cookies.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("gamebay_session", cookies))

	r.SetFuncMap(template.FuncMap{
		"price": market.FormatCents,
	})
	r.LoadHTMLGlob("internal/views/*.tmpl")

	srv := handler.New(cfg, svc, gdb, logger)
	srv.Routes(r)

	log.Println("Server listening on :" + cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
