package storage

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"morvarid-backend/models"
)

// setupTestDB opens a fresh in-memory database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Farm{},
		&models.Product{},
		&models.ProductionRecord{},
		&models.SalesInvoice{},
		&models.Inventory{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestFarm(t *testing.T, db *gorm.DB, name string, active bool) models.Farm {
	t.Helper()
	farm := models.Farm{Name: name, TotalBirds: 5000, IsActive: active}
	if err := db.Create(&farm).Error; err != nil {
		t.Fatalf("failed to create farm: %v", err)
	}
	// GORM skips zero-valued fields with a default tag on insert, so an
	// inactive farm would be stored with the column default (true);
	// write the flag explicitly.
	if !active {
		if err := db.Model(&farm).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to deactivate farm: %v", err)
		}
	}
	return farm
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string, farm *models.Farm) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "secret123",
		FullName: username,
		Role:     role,
		IsActive: true,
	}
	if farm != nil {
		user.AssignedFarmID = &farm.ID
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func currentStock(t *testing.T, db *gorm.DB, farm models.Farm) int {
	t.Helper()
	inv, err := GetInventory(db, farm.ID)
	if err != nil {
		t.Fatalf("failed to read inventory: %v", err)
	}
	if inv == nil {
		return 0
	}
	return inv.CurrentEggStock
}
