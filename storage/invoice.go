package storage

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/models"
	"morvarid-backend/utils"
)

// Invoice numbers look like INV-<unix ms>-<counter>. The counter is derived
// from the persisted invoices inside the creation transaction, so restarts
// cannot reset it and concurrent writers cannot hand out the same suffix.
var invoiceNumberPattern = regexp.MustCompile(`^INV-\d+-(\d+)$`)

const invoiceCounterStart = 1000

// ParseInvoiceSuffix extracts the running counter from an invoice number.
func ParseInvoiceSuffix(invoiceNumber string) (int, bool) {
	m := invoiceNumberPattern.FindStringSubmatch(invoiceNumber)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func nextInvoiceCounter(tx *gorm.DB) (int, error) {
	var numbers []string
	if err := tx.Model(&models.SalesInvoice{}).Pluck("invoice_number", &numbers).Error; err != nil {
		return 0, err
	}

	next := invoiceCounterStart
	for _, num := range numbers {
		if suffix, ok := ParseInvoiceSuffix(num); ok && suffix+1 > next {
			next = suffix + 1
		}
	}
	return next, nil
}

// CreateInvoice inserts a sales invoice, debits the farm's egg stock by the
// sold quantity and notifies sales officers. The total price is always
// computed here from quantity and unit price; any client-supplied total is
// ignored by the handler before the invoice reaches storage.
func CreateInvoice(db *gorm.DB, invoice *models.SalesInvoice) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var farm models.Farm
		if err := tx.First(&farm, "id = ?", invoice.FarmID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFarmInactive
			}
			return err
		}
		if !farm.IsActive {
			return ErrFarmInactive
		}

		counter, err := nextInvoiceCounter(tx)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = fmt.Sprintf("INV-%d-%d", time.Now().UnixMilli(), counter)
		invoice.TotalPrice = float64(invoice.Quantity) * invoice.PricePerUnit

		if invoice.CreatedTime == "" {
			invoice.CreatedTime = utils.CurrentWallClock()
		}

		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		if _, err := AdjustInventory(tx, invoice.FarmID, -invoice.Quantity); err != nil {
			return err
		}

		return notifySalesOfficers(tx,
			"New sales invoice",
			fmt.Sprintf("Farm %s recorded a sales invoice", farm.Name),
			models.NotificationInvoice,
			farm.ID)
	})
}

// DeleteInvoice removes an invoice and credits the sold quantity back to the
// farm's stock. Returns false when no such invoice exists.
func DeleteInvoice(db *gorm.DB, id uuid.UUID) (bool, error) {
	deleted := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var invoice models.SalesInvoice
		if err := tx.First(&invoice, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if _, err := AdjustInventory(tx, invoice.FarmID, invoice.Quantity); err != nil {
			return err
		}

		res := tx.Delete(&invoice)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected != 0
		return nil
	})
	return deleted, err
}
