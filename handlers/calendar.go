package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetMonthHandler resolves a full month grid: /calendar/:year/:month.
func (h *ScheduleHandler) GetMonthHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month in path"})
		return
	}

	view, err := h.Service.BuildMonth(c.Request.Context(), providerID, year, month, time.Now())
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetDayHandler resolves a single date with its jobs: /calendar/day/:date.
func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date in path"})
		return
	}

	cell, err := h.Service.DayDetail(c.Request.Context(), providerID, date, time.Now())
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": cell})
}

// RescheduleJobHandler moves a job to a new date (drag-to-reschedule).
func (h *ScheduleHandler) RescheduleJobHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	jobID := c.Param("jobID")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing job ID in path"})
		return
	}

	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date in request body"})
		return
	}

	job, err := h.Service.RescheduleJob(c.Request.Context(), providerID, jobID, body.Date, time.Now())
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job rescheduled", "job": job})
}
