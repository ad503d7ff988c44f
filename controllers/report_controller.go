package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openlot/openlot-api/config"
	"github.com/openlot/openlot-api/services"
)

// GetReportStats handles GET /reports/stats - inventory and sales aggregates
func GetReportStats(c *gin.Context) {
	svc := services.NewReportService(config.GetDB())
	report, err := svc.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to build report",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, report)
}
