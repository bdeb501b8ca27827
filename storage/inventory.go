package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/models"
)

// AdjustInventory applies a signed egg delta to a farm's stock. The stock
// never goes below zero: a delta that would overdraw it clamps to the floor,
// so reversing an oversold invoice does not round-trip (accepted lossy edge).
//
// The adjustment is a single conditional UPDATE, so concurrent production and
// sales events against the same farm cannot lose each other's delta. The row
// is created lazily on the farm's first event.
func AdjustInventory(db *gorm.DB, farmID uuid.UUID, delta int) (*models.Inventory, error) {
	res := db.Model(&models.Inventory{}).
		Where("farm_id = ?", farmID).
		Updates(map[string]interface{}{
			"current_egg_stock": gorm.Expr(
				"CASE WHEN current_egg_stock + ? < 0 THEN 0 ELSE current_egg_stock + ? END",
				delta, delta),
			"last_updated": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		stock := delta
		if stock < 0 {
			stock = 0
		}
		inv := models.Inventory{
			FarmID:          farmID,
			CurrentEggStock: stock,
			LastUpdated:     time.Now(),
		}
		if err := db.Create(&inv).Error; err != nil {
			return nil, err
		}
		return &inv, nil
	}

	var inv models.Inventory
	if err := db.Where("farm_id = ?", farmID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetInventory returns the farm's stock row, or nil when no event has
// touched the farm yet.
func GetInventory(db *gorm.DB, farmID uuid.UUID) (*models.Inventory, error) {
	var inv models.Inventory
	if err := db.Where("farm_id = ?", farmID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}
