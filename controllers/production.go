package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/config"
	"morvarid-backend/models"
	"morvarid-backend/storage"
	"morvarid-backend/utils"
)

// CreateProductionInput defines the expected JSON structure for a daily record
type CreateProductionInput struct {
	FarmID           uuid.UUID `json:"farmId" binding:"required"`
	Date             string    `json:"date" binding:"required"`
	EggCount         int       `json:"eggCount" binding:"min=0"`
	BrokenEggs       int       `json:"brokenEggs" binding:"min=0"`
	Mortality        int       `json:"mortality" binding:"min=0"`
	FeedConsumption  float64   `json:"feedConsumption" binding:"min=0"`
	WaterConsumption float64   `json:"waterConsumption" binding:"min=0"`
	Notes            string    `json:"notes"`
}

// UpdateProductionInput defines the expected JSON structure for a partial update
type UpdateProductionInput struct {
	Date             *string  `json:"date"`
	EggCount         *int     `json:"eggCount" binding:"omitempty,min=0"`
	BrokenEggs       *int     `json:"brokenEggs" binding:"omitempty,min=0"`
	Mortality        *int     `json:"mortality" binding:"omitempty,min=0"`
	FeedConsumption  *float64 `json:"feedConsumption" binding:"omitempty,min=0"`
	WaterConsumption *float64 `json:"waterConsumption" binding:"omitempty,min=0"`
	Notes            *string  `json:"notes"`
}

// CreateProductionRecord records a day of farm statistics and credits the
// farm's egg stock
func CreateProductionRecord(c *gin.Context) {
	var input CreateProductionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.CanAccessFarm(c, input.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	userID, _ := c.Get("userId")
	userUUID, _ := uuid.Parse(userID.(string))

	record := models.ProductionRecord{
		FarmID:           input.FarmID,
		UserID:           userUUID,
		Date:             input.Date,
		EggCount:         input.EggCount,
		BrokenEggs:       input.BrokenEggs,
		Mortality:        input.Mortality,
		FeedConsumption:  input.FeedConsumption,
		WaterConsumption: input.WaterConsumption,
		Notes:            input.Notes,
	}

	if err := storage.CreateProductionRecord(config.DB, &record); err != nil {
		if errors.Is(err, storage.ErrFarmInactive) {
			utils.RespondWithError(c, http.StatusBadRequest, "Selected farm is not active")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create record")
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetProductionRecords lists records, restricted to the caller's farm for
// non-admins. Supports farmId and date query filters.
func GetProductionRecords(c *gin.Context) {
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

	var records []models.ProductionRecord
	if err := query.Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetProductionRecord retrieves a specific record by ID
func GetProductionRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var record models.ProductionRecord
	if err := config.DB.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CanAccessFarm(c, record.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateProductionRecord applies a partial update. Inventory is only touched
// by creation and deletion, never by field edits.
func UpdateProductionRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var input UpdateProductionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var record models.ProductionRecord
	if err := config.DB.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CanAccessFarm(c, record.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.EggCount != nil {
		record.EggCount = *input.EggCount
	}
	if input.BrokenEggs != nil {
		record.BrokenEggs = *input.BrokenEggs
	}
	if input.Mortality != nil {
		record.Mortality = *input.Mortality
	}
	if input.FeedConsumption != nil {
		record.FeedConsumption = *input.FeedConsumption
	}
	if input.WaterConsumption != nil {
		record.WaterConsumption = *input.WaterConsumption
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteProductionRecord removes a record and reverses its inventory credit
func DeleteProductionRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var record models.ProductionRecord
	if err := config.DB.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CanAccessFarm(c, record.FarmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	deleted, err := storage.DeleteProductionRecord(config.DB, recordID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete record")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		return
	}

	c.Status(http.StatusNoContent)
}
