package database

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/saiisback/capy/internal/config"
	"github.com/saiisback/capy/internal/infrastructure/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		dsn, err := pq.ParseURL(cfg.URL())
		if err != nil {
			return nil, fmt.Errorf("parse database url: %w", err)
		}
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.CatalogItem{})
}
