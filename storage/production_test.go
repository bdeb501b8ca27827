package storage

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"morvarid-backend/models"
)

func TestCreateProductionRecordCreditsInventory(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)

	record := models.ProductionRecord{
		FarmID:     farm.ID,
		Date:       "1404/06/08",
		EggCount:   50,
		BrokenEggs: 5,
		Mortality:  2,
	}
	if err := CreateProductionRecord(db, &record); err != nil {
		t.Fatalf("CreateProductionRecord failed: %v", err)
	}

	if record.ID == uuid.Nil {
		t.Error("record was not assigned an ID")
	}
	if record.CreatedTime == "" {
		t.Error("createdTime was not stamped")
	}
	if got := currentStock(t, db, farm); got != 45 {
		t.Errorf("expected stock 45 (50-5), got %d", got)
	}
}

func TestCreateProductionRecordInactiveFarm(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Closed", false)

	record := models.ProductionRecord{FarmID: farm.ID, Date: "1404/06/08", EggCount: 100}
	err := CreateProductionRecord(db, &record)
	if !errors.Is(err, ErrFarmInactive) {
		t.Fatalf("expected ErrFarmInactive, got %v", err)
	}

	// Rejection must leave no trace
	var count int64
	db.Model(&models.ProductionRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no records persisted, found %d", count)
	}
	if got := currentStock(t, db, farm); got != 0 {
		t.Errorf("expected untouched inventory, got %d", got)
	}
}

func TestCreateProductionRecordMissingFarm(t *testing.T) {
	db := setupTestDB(t)

	record := models.ProductionRecord{FarmID: uuid.New(), Date: "1404/06/08", EggCount: 100}
	if err := CreateProductionRecord(db, &record); !errors.Is(err, ErrFarmInactive) {
		t.Fatalf("expected ErrFarmInactive for unknown farm, got %v", err)
	}
}

func TestCreateProductionRecordNotifiesSalesOfficers(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)
	officer := createTestUser(t, db, "sales1", models.RoleSalesOfficer, &farm)
	createTestUser(t, db, "recorder1", models.RoleRecordingOfficer, &farm)

	record := models.ProductionRecord{FarmID: farm.ID, Date: "1404/06/08", EggCount: 30}
	if err := CreateProductionRecord(db, &record); err != nil {
		t.Fatalf("CreateProductionRecord failed: %v", err)
	}

	var notifications []models.Notification
	if err := db.Find(&notifications).Error; err != nil {
		t.Fatalf("failed to load notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification (sales officers only), got %d", len(notifications))
	}
	n := notifications[0]
	if n.UserID != officer.ID {
		t.Errorf("notification went to wrong user")
	}
	if n.Title != "New statistics recorded" {
		t.Errorf("unexpected title %q", n.Title)
	}
	if n.Type != models.NotificationStatistics {
		t.Errorf("unexpected type %q", n.Type)
	}
	if n.FarmID == nil || *n.FarmID != farm.ID {
		t.Errorf("notification not bound to farm")
	}
	if n.IsRead {
		t.Errorf("new notification must be unread")
	}
}

func TestDeleteProductionRecordReversesCredit(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)
	if _, err := AdjustInventory(db, farm.ID, 100); err != nil {
		t.Fatalf("seeding inventory failed: %v", err)
	}

	record := models.ProductionRecord{FarmID: farm.ID, Date: "1404/06/08", EggCount: 50, BrokenEggs: 5}
	if err := CreateProductionRecord(db, &record); err != nil {
		t.Fatalf("CreateProductionRecord failed: %v", err)
	}
	if got := currentStock(t, db, farm); got != 145 {
		t.Fatalf("expected stock 145, got %d", got)
	}

	deleted, err := DeleteProductionRecord(db, record.ID)
	if err != nil {
		t.Fatalf("DeleteProductionRecord failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected record to be deleted")
	}
	if got := currentStock(t, db, farm); got != 100 {
		t.Errorf("expected stock back to 100, got %d", got)
	}
}

func TestDeleteProductionRecordMissing(t *testing.T) {
	db := setupTestDB(t)

	deleted, err := DeleteProductionRecord(db, uuid.New())
	if err != nil {
		t.Fatalf("DeleteProductionRecord failed: %v", err)
	}
	if deleted {
		t.Error("expected false for unknown record")
	}
}
