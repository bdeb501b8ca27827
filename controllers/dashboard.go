package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"morvarid-backend/config"
	"morvarid-backend/storage"
	"morvarid-backend/utils"
)

// GetDashboardStats returns the aggregated egg, sales and mortality summary
func GetDashboardStats(c *gin.Context) {
	stats, err := storage.GetDashboardStats(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
