package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesInvoice (havaleh) records an egg sale against a farm's stock.
// TotalPrice is computed server-side at creation and never recomputed on read.
type SalesInvoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string    `gorm:"uniqueIndex;not null" json:"invoiceNumber"`

	FarmID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"farmId"`
	UserID    uuid.UUID  `gorm:"type:uuid;index" json:"userId"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"productId"`

	Date          string   `gorm:"not null;index" json:"date"` // Jalali YYYY/MM/DD
	CustomerName  string   `gorm:"not null" json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	Quantity      int      `gorm:"not null" json:"quantity"`
	Weight        *float64 `json:"weight"` // kg, optional
	PricePerUnit  float64  `gorm:"not null" json:"pricePerUnit"`
	TotalPrice    float64  `gorm:"not null" json:"totalPrice"`
	IsPaid        bool     `gorm:"default:false" json:"isPaid"`
	Notes         string   `json:"notes"`

	CreatedTime string    `json:"createdTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i *SalesInvoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
