package handlers

import (
	"net/http"
	"strconv"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/services/schedule"

	"github.com/gin-gonic/gin"
)

// yearParam parses the :year path segment.
func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year in path"})
		return 0, false
	}
	return year, true
}

// ListHolidaysHandler returns the computed holiday calendar for a year.
// Pure computation, no provider context needed.
func (h *ScheduleHandler) ListHolidaysHandler(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"holidays": schedule.AllHolidays(year),
	})
}

// GetHolidaySettingsHandler returns the provider's holiday choices for a year.
func (h *ScheduleHandler) GetHolidaySettingsHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}

	settings, err := h.Service.GetHolidaySettings(c.Request.Context(), providerID, year)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// ToggleHolidayDateHandler blocks or unblocks one holiday date.
func (h *ScheduleHandler) ToggleHolidayDateHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date in request body"})
		return
	}

	settings, err := h.Service.ToggleHolidayDate(c.Request.Context(), providerID, body.Date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// SetHolidayHoursHandler attaches custom hours to a blocked holiday.
func (h *ScheduleHandler) SetHolidayHoursHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var body struct {
		Date  string           `json:"date" binding:"required"`
		Hours models.TimeBlock `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	settings, err := h.Service.SetHolidayCustomHours(c.Request.Context(), providerID, body.Date, body.Hours)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// ClearHolidayHoursHandler removes custom hours, leaving the date blocked.
func (h *ScheduleHandler) ClearHolidayHoursHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date in request body"})
		return
	}

	settings, err := h.Service.ClearHolidayCustomHours(c.Request.Context(), providerID, body.Date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// BlockAllFederalHandler blocks every federal holiday of the year at once.
func (h *ScheduleHandler) BlockAllFederalHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}

	settings, err := h.Service.BlockAllFederal(c.Request.Context(), providerID, year)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All federal holidays blocked", "settings": settings})
}

// ClearHolidayYearHandler wipes the year's blocked set and custom hours.
func (h *ScheduleHandler) ClearHolidayYearHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}

	settings, err := h.Service.ClearHolidayYear(c.Request.Context(), providerID, year)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday settings cleared", "settings": settings})
}
