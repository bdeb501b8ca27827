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

// CreateUserInput defines the expected JSON structure for creating a user
type CreateUserInput struct {
	Username       string     `json:"username" binding:"required"`
	Password       string     `json:"password" binding:"required,min=6"`
	FullName       string     `json:"fullName" binding:"required"`
	Role           string     `json:"role" binding:"required,oneof=admin recording_officer sales_officer"`
	AssignedFarmID *uuid.UUID `json:"assignedFarmId"`
}

// UpdateUserInput defines the expected JSON structure for updating a user
type UpdateUserInput struct {
	Username       *string    `json:"username"`
	Password       *string    `json:"password" binding:"omitempty,min=6"`
	FullName       *string    `json:"fullName"`
	Role           *string    `json:"role" binding:"omitempty,oneof=admin recording_officer sales_officer"`
	AssignedFarmID *uuid.UUID `json:"assignedFarmId"`
	IsActive       *bool      `json:"isActive"`
}

// CreateUser creates a new user (admin only)
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Non-admin roles must be tied to a farm
	if input.Role != models.RoleAdmin && input.AssignedFarmID == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Farm assignment is required for this role")
		return
	}

	var existingUser models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existingUser).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already taken")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Username:       input.Username,
		Password:       input.Password, // Will be hashed in BeforeCreate hook
		FullName:       input.FullName,
		Role:           input.Role,
		AssignedFarmID: input.AssignedFarmID,
		IsActive:       true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsers retrieves all users
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser retrieves a specific user by ID
func GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser updates an existing user (admin only)
func UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// The role/farm pairing must stay valid after the partial update
	finalRole := user.Role
	if input.Role != nil {
		finalRole = *input.Role
	}
	finalFarmID := user.AssignedFarmID
	if input.AssignedFarmID != nil {
		finalFarmID = input.AssignedFarmID
	}
	if finalRole != models.RoleAdmin && finalFarmID == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Farm assignment is required for this role")
		return
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
			return
		}
		user.Password = hashed
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	user.Role = finalRole
	if input.AssignedFarmID != nil {
		user.AssignedFarmID = input.AssignedFarmID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user (admin only)
func DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	res := config.DB.Delete(&models.User{}, "id = ?", userID)
	if res.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.Status(http.StatusNoContent)
}
