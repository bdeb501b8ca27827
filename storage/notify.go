package storage

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/models"
)

// notifySalesOfficers fans a notification out to every sales officer.
// Runs inside the caller's transaction.
func notifySalesOfficers(tx *gorm.DB, title, message, notifType string, farmID uuid.UUID) error {
	var officers []models.User
	if err := tx.Where("role = ?", models.RoleSalesOfficer).Find(&officers).Error; err != nil {
		return err
	}

	for _, officer := range officers {
		fid := farmID
		notification := models.Notification{
			UserID:  officer.ID,
			Title:   title,
			Message: message,
			Type:    notifType,
			FarmID:  &fid,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}
	}
	return nil
}
