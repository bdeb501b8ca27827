package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types emitted by record and invoice creation.
const (
	NotificationStatistics = "statistics"
	NotificationInvoice    = "invoice"
	NotificationLowStock   = "low_stock"
)

type Notification struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"userId"`
	Title   string     `gorm:"not null" json:"title"`
	Message string     `gorm:"type:text" json:"message"`
	Type    string     `gorm:"type:varchar(20)" json:"type"`
	FarmID  *uuid.UUID `gorm:"type:uuid;index" json:"farmId"`
	IsRead  bool       `gorm:"default:false" json:"isRead"`

	CreatedAt time.Time `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
