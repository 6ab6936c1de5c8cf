// internal/services/testdb_test.go
package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vintagecottage/storefront/internal/models"
)

// setupTestDB opens a private in-memory database per test and migrates the
// full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps the schema visible across the
	// pool's connections while staying private to this test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Product{},
		&models.Submission{},
		&models.CartItem{},
		&models.Offer{},
		&models.UserOffer{},
		&models.Visitor{},
		&models.Order{},
		&models.Admin{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, title string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Title:       title,
		Description: "a fine piece",
		Price:       price,
		Category:    "Vintage Furniture",
		Images:      models.ImageList{"/images/" + title + ".jpg"},
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}
