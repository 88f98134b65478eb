package repo

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anhthuvo/mobileAppBE/internal/domain"
)

// setupTestDB opens an in-memory SQLite database with the schema
// migrated, one per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
