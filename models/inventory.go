package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory is the derived running egg stock per farm. One row per farm,
// created lazily on the first production or sales event. CurrentEggStock is
// clamped at zero on every adjustment.
type Inventory struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FarmID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"farmId"`
	CurrentEggStock int       `gorm:"not null;default:0" json:"currentEggStock"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

func (i *Inventory) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
