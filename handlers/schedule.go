package handlers

import (
	"errors"
	"net/http"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/services/schedule"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the provider scheduling endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// providerIDFromContext retrieves the provider ID set by JWTAuthProviderMiddleware.
func providerIDFromContext(c *gin.Context) (string, bool) {
	providerIDValue, exists := c.Get("providerID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider not authenticated"})
		return "", false
	}
	providerID, ok := providerIDValue.(string)
	if !ok || providerID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid provider ID in context"})
		return "", false
	}
	return providerID, true
}

// respondScheduleError maps domain error codes onto HTTP statuses.
func respondScheduleError(c *gin.Context, err error) {
	var domainErr *schedule.Error
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case schedule.CodeNotFound:
			status = http.StatusNotFound
		case schedule.CodeScheduleInvalid, schedule.CodeNotBlocked:
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": domainErr.Code, "message": domainErr.Message})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Storage operation failed", err.Error())
}

// GetWeeklyScheduleHandler returns the provider's week, defaults included.
func (h *ScheduleHandler) GetWeeklyScheduleHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	weekly, err := h.Service.GetWeeklySchedule(c.Request.Context(), providerID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": weekly})
}

// SaveWeeklyScheduleHandler validates and persists the full week. Validation
// issues come back as 422 with the complete per-day issue list.
func (h *ScheduleHandler) SaveWeeklyScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Days []models.WeeklyDaySchedule `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid weekly schedule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	issues, err := h.Service.SaveWeeklySchedule(c.Request.Context(), providerID, req.Days)
	if len(issues) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Schedule has validation issues",
			"issues": issues,
		})
		return
	}
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weekly schedule saved"})
}
