package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionRecord is one day of statistics for a farm. Date is a Jalali
// calendar string (YYYY/MM/DD) independent of the CreatedAt timestamp.
type ProductionRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FarmID uuid.UUID `gorm:"type:uuid;index;not null" json:"farmId"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"userId"`

	Date             string  `gorm:"not null;index" json:"date"`
	EggCount         int     `gorm:"not null;default:0" json:"eggCount"`
	BrokenEggs       int     `gorm:"not null;default:0" json:"brokenEggs"`
	Mortality        int     `gorm:"not null;default:0" json:"mortality"`
	FeedConsumption  float64 `gorm:"not null;default:0" json:"feedConsumption"`  // kg
	WaterConsumption float64 `gorm:"not null;default:0" json:"waterConsumption"` // liters
	Notes            string  `json:"notes"`

	CreatedTime string    `json:"createdTime"` // wall-clock time of entry
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *ProductionRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// NetEggs is the amount a record contributes to farm inventory.
func (r *ProductionRecord) NetEggs() int {
	return r.EggCount - r.BrokenEggs
}
