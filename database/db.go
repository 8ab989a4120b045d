package database

import (
	"fmt"
	"log"

	"notilog/config"
	"notilog/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the global GORM handle. It is set once by InitDB at startup and is
// read-only afterwards.
var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the notifications table.
// A connection failure at startup is fatal.
func InitDB() {
	cfg := config.AppConfig
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	if err := db.AutoMigrate(&models.Notification{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	DB = db
	log.Println("Connected to Postgres successfully!")
}
