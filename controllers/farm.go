package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/config"
	"morvarid-backend/models"
	"morvarid-backend/utils"
)

// CreateFarmInput defines the expected JSON structure for creating a farm
type CreateFarmInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TotalBirds  int    `json:"totalBirds" binding:"min=0"`
}

// UpdateFarmInput defines the expected JSON structure for updating a farm
type UpdateFarmInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	TotalBirds  *int    `json:"totalBirds" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"isActive"`
}

// CreateFarm creates a new farm (admin only)
func CreateFarm(c *gin.Context) {
	var input CreateFarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existingFarm models.Farm
	if err := config.DB.Where("name = ?", input.Name).First(&existingFarm).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Farm with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	farm := models.Farm{
		Name:        input.Name,
		Description: input.Description,
		TotalBirds:  input.TotalBirds,
		IsActive:    true,
	}

	if err := config.DB.Create(&farm).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create farm")
		return
	}

	c.JSON(http.StatusCreated, farm)
}

// GetFarms retrieves all farms
func GetFarms(c *gin.Context) {
	var farms []models.Farm
	if err := config.DB.Order("created_at DESC").Find(&farms).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve farms")
		return
	}
	c.JSON(http.StatusOK, farms)
}

// GetActiveFarms retrieves farms available for new records and invoices
func GetActiveFarms(c *gin.Context) {
	var farms []models.Farm
	if err := config.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&farms).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve farms")
		return
	}
	c.JSON(http.StatusOK, farms)
}

// GetFarm retrieves a specific farm by ID
func GetFarm(c *gin.Context) {
	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid farm ID format")
		return
	}

	var farm models.Farm
	if err := config.DB.First(&farm, "id = ?", farmID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Farm not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, farm)
}

// UpdateFarm updates an existing farm (admin only)
func UpdateFarm(c *gin.Context) {
	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid farm ID format")
		return
	}

	var input UpdateFarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var farm models.Farm
	if err := config.DB.First(&farm, "id = ?", farmID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Farm not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		farm.Name = *input.Name
	}
	if input.Description != nil {
		farm.Description = *input.Description
	}
	if input.TotalBirds != nil {
		farm.TotalBirds = *input.TotalBirds
	}
	if input.IsActive != nil {
		farm.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&farm).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update farm")
		return
	}

	c.JSON(http.StatusOK, farm)
}

// DeleteFarm removes a farm (admin only)
func DeleteFarm(c *gin.Context) {
	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid farm ID format")
		return
	}

	res := config.DB.Delete(&models.Farm{}, "id = ?", farmID)
	if res.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete farm")
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Farm not found")
		return
	}

	c.Status(http.StatusNoContent)
}
