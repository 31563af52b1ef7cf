package handler

import (
	"net/http"

	"hospital-analytics-backend/internal/service"
	"hospital-analytics-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Summary returns executive-level admission KPIs
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.KPISummary()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch KPI summary")
		return
	}
	utils.SuccessResponse(c, summary)
}

// BedAlerts returns departments with critical bed occupancy
func (h *AnalyticsHandler) BedAlerts(c *gin.Context) {
	alerts, err := h.analyticsService.BedAlerts()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch bed occupancy alerts")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// EmergencyLoad returns emergency admission pressure by weekday and hour
func (h *AnalyticsHandler) EmergencyLoad(c *gin.Context) {
	rows, err := h.analyticsService.EmergencyLoad()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch emergency load")
		return
	}
	utils.SuccessResponse(c, rows)
}

// DoctorUtilization returns doctor workload based on procedure durations
func (h *AnalyticsHandler) DoctorUtilization(c *gin.Context) {
	rows, err := h.analyticsService.DoctorUtilization()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctor utilization")
		return
	}
	utils.SuccessResponse(c, rows)
}
