package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/config"
	"morvarid-backend/models"
	"morvarid-backend/storage"
	"morvarid-backend/utils"
)

// CreateInvoiceInput defines the expected JSON structure for creating an
// invoice. There is deliberately no total-price field: the total is always
// computed server-side from quantity and unit price.
type CreateInvoiceInput struct {
	FarmID        uuid.UUID  `json:"farmId" binding:"required"`
	ProductID     *uuid.UUID `json:"productId"`
	Date          string     `json:"date" binding:"required"`
	CustomerName  string     `json:"customerName" binding:"required"`
	CustomerPhone string     `json:"customerPhone"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
	Weight        *float64   `json:"weight" binding:"omitempty,min=0"`
	PricePerUnit  float64    `json:"pricePerUnit" binding:"min=0"`
	IsPaid        bool       `json:"isPaid"`
	Notes         string     `json:"notes"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	ProductID     *uuid.UUID `json:"productId"`
	Date          *string    `json:"date"`
	CustomerName  *string    `json:"customerName"`
	CustomerPhone *string    `json:"customerPhone"`
	Quantity      *int       `json:"quantity" binding:"omitempty,min=1"`
	Weight        *float64   `json:"weight" binding:"omitempty,min=0"`
	PricePerUnit  *float64   `json:"pricePerUnit" binding:"omitempty,min=0"`
	IsPaid        *bool      `json:"isPaid"`
	Notes         *string    `json:"notes"`
}

// CreateInvoice creates a sales invoice and debits the farm's egg stock
func CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.CanAccessFarm(c, input.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	if input.CustomerPhone != "" && !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.ProductID != nil {
		var product models.Product
		if err := config.DB.First(&product, "id = ?", *input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Product not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	userID, _ := c.Get("userId")
	userUUID, _ := uuid.Parse(userID.(string))

	invoice := models.SalesInvoice{
		FarmID:        input.FarmID,
		UserID:        userUUID,
		ProductID:     input.ProductID,
		Date:          input.Date,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Quantity:      input.Quantity,
		Weight:        input.Weight,
		PricePerUnit:  input.PricePerUnit,
		IsPaid:        input.IsPaid,
		Notes:         input.Notes,
	}

	if err := storage.CreateInvoice(config.DB, &invoice); err != nil {
		if errors.Is(err, storage.ErrFarmInactive) {
			utils.RespondWithError(c, http.StatusBadRequest, "Selected farm is not active")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		}
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices lists invoices, restricted to the caller's farm for
// non-admins. Supports farmId, date and limit query filters.
func GetInvoices(c *gin.Context) {
	farmID, ok := utils.ScopedFarmID(c, c.Query("farmId"))
	if !ok {
		utils.RespondWithError(c, http.StatusForbidden, "No farm assigned")
		return
	}

	query := config.DB.Order("date DESC, created_at DESC")
	if farmID != "" {
		query = query.Where("farm_id = ?", farmID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}

	var invoices []models.SalesInvoice
	if err := query.Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.SalesInvoice
	if err := config.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CanAccessFarm(c, invoice.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice applies a partial update. The total price is recomputed when
// quantity or unit price change; inventory is only touched by creation and
// deletion.
func UpdateInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var invoice models.SalesInvoice
	if err := config.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CanAccessFarm(c, invoice.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	if input.ProductID != nil {
		invoice.ProductID = input.ProductID
	}
	if input.Date != nil {
		invoice.Date = *input.Date
	}
	if input.CustomerName != nil {
		invoice.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		invoice.CustomerPhone = *input.CustomerPhone
	}
	if input.Quantity != nil {
		invoice.Quantity = *input.Quantity
	}
	if input.Weight != nil {
		invoice.Weight = input.Weight
	}
	if input.PricePerUnit != nil {
		invoice.PricePerUnit = *input.PricePerUnit
	}
	if input.Quantity != nil || input.PricePerUnit != nil {
		invoice.TotalPrice = float64(invoice.Quantity) * invoice.PricePerUnit
	}
	if input.IsPaid != nil {
		invoice.IsPaid = *input.IsPaid
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice and credits the sold quantity back
func DeleteInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.SalesInvoice
	if err := config.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CanAccessFarm(c, invoice.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	deleted, err := storage.DeleteInvoice(config.DB, invoiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.Status(http.StatusNoContent)
}
