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

type CreateNotificationInput struct {
	UserID  uuid.UUID  `json:"userId" binding:"required"`
	Title   string     `json:"title" binding:"required"`
	Message string     `json:"message"`
	Type    string     `json:"type"`
	FarmID  *uuid.UUID `json:"farmId"`
}

// CreateNotification creates a notification for a user (admin only)
func CreateNotification(c *gin.Context) {
	var input CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	notification := models.Notification{
		UserID:  input.UserID,
		Title:   input.Title,
		Message: input.Message,
		Type:    input.Type,
		FarmID:  input.FarmID,
	}

	if err := config.DB.Create(&notification).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create notification")
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// GetNotifications lists a user's notifications, newest first. Users may
// only read their own feed; admins may read anyone's.
func GetNotifications(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	callerID, _ := c.Get("userId")
	role, _ := c.Get("role")
	if role != models.RoleAdmin && callerID != targetID.String() {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this feed is not allowed")
		return
	}

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", targetID).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead marks a notification as read
func MarkNotificationRead(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	var notification models.Notification
	if err := config.DB.First(&notification, "id = ?", notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Notification not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	callerID, _ := c.Get("userId")
	role, _ := c.Get("role")
	if role != models.RoleAdmin && callerID != notification.UserID.String() {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this notification is not allowed")
		return
	}

	if err := config.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification")
		return
	}

	notification.IsRead = true
	c.JSON(http.StatusOK, notification)
}
