package storage

import (
	"github.com/Arzish122/fullstack-ecommerce/config"
	"github.com/Arzish122/fullstack-ecommerce/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to Postgres when DATABASE_URL is set, otherwise to the
// SQLite file at SQLITE_PATH. The returned handle is a pool; every
// request runs on its own pooled connection.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}

// Migrate creates the products and cart_items tables if they do not
// exist yet. Safe to run against an already-initialized store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
	)
}
