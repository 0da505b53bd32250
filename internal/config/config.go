package config

import "os"

type Config struct {
	Port          string
	DatabaseDSN   string
	SessionSecret string
	UploadDir     string
	BaseURL       string

	YookassaShopID    string
	YookassaSecretKey string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("APP_PORT", "8080"),
		DatabaseDSN:   os.Getenv("DB_DSN"),
		SessionSecret: getEnv("SESSION_SECRET", "dev_fallback_secret"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),

		YookassaShopID:    os.Getenv("YOOKASSA_SHOP_ID"),
		YookassaSecretKey: os.Getenv("YOOKASSA_SECRET_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
