package services

import (
	"path/filepath"
	"testing"

	"github.com/Arzish122/fullstack-ecommerce/models"
	"github.com/Arzish122/fullstack-ecommerce/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title string) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:        title,
		Description:  "seeded",
		CurrentPrice: 9.99,
		Image:        title + ".png",
		Category:     "misc",
	}
	require.NoError(t, CreateProduct(db, product))
	return product
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
