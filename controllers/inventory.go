package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"morvarid-backend/config"
	"morvarid-backend/storage"
	"morvarid-backend/utils"
)

// GetInventory returns a farm's current egg stock. Farms with no recorded
// event yet report zero stock rather than 404.
func GetInventory(c *gin.Context) {
	farmID, err := uuid.Parse(c.Param("farmId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid farm ID format")
		return
	}

	if !utils.CanAccessFarm(c, farmID.String()) {
		utils.RespondWithError(c, http.StatusForbidden, "Access to this farm is not allowed")
		return
	}

	inv, err := storage.GetInventory(config.DB, farmID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}
	if inv == nil {
		c.JSON(http.StatusOK, gin.H{"farmId": farmID, "currentEggStock": 0})
		return
	}

	c.JSON(http.StatusOK, inv)
}
