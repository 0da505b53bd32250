package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gamebay/internal/models"
)

// MustOpen opens the database from the DSN in .env
func MustOpen(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DB_DSN is empty (check your .env)")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	return db
}

// Migrate applies the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Account{}, &models.Listing{})
}
