package storage

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/models"
	"morvarid-backend/utils"
)

// CreateProductionRecord inserts a daily statistics record, credits the
// farm's inventory with the net egg count and notifies sales officers.
// The record insert and the inventory adjustment share one transaction.
func CreateProductionRecord(db *gorm.DB, record *models.ProductionRecord) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var farm models.Farm
		if err := tx.First(&farm, "id = ?", record.FarmID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFarmInactive
			}
			return err
		}
		if !farm.IsActive {
			return ErrFarmInactive
		}

		if record.CreatedTime == "" {
			record.CreatedTime = utils.CurrentWallClock()
		}

		if err := tx.Create(record).Error; err != nil {
			return err
		}

		if _, err := AdjustInventory(tx, record.FarmID, record.NetEggs()); err != nil {
			return err
		}

		return notifySalesOfficers(tx,
			"New statistics recorded",
			fmt.Sprintf("Farm %s recorded its statistics", farm.Name),
			models.NotificationStatistics,
			farm.ID)
	})
}

// DeleteProductionRecord removes a record and reverses its inventory credit.
// Returns false when no such record exists.
func DeleteProductionRecord(db *gorm.DB, id uuid.UUID) (bool, error) {
	deleted := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var record models.ProductionRecord
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if _, err := AdjustInventory(tx, record.FarmID, -record.NetEggs()); err != nil {
			return err
		}

		res := tx.Delete(&record)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected != 0
		return nil
	})
	return deleted, err
}
