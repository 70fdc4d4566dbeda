package handlers

import (
	"net/http"
	"time"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/services/schedule"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListOverridesHandler returns the overrides within ?from=...&to=... (inclusive).
func (h *ScheduleHandler) ListOverridesHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters"})
		return
	}

	overrides, err := h.Service.ListOverrides(c.Request.Context(), providerID, from, to)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}

// SaveOverrideHandler blocks one date or gives it custom hours, replacing any
// prior override. A block landing on active jobs still saves, and the
// response carries the warning for the UI to surface.
func (h *ScheduleHandler) SaveOverrideHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Date   string              `json:"date" binding:"required"`
		Kind   models.OverrideKind `json:"kind" binding:"required"`
		Reason string              `json:"reason"`
		Blocks []models.TimeBlock  `json:"blocks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid override request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	warning, err := h.Service.SaveOverride(c.Request.Context(), providerID, models.DateOverride{
		Date:   req.Date,
		Kind:   req.Kind,
		Reason: req.Reason,
		Blocks: req.Blocks,
	}, time.Now())
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	resp := gin.H{"message": "Override saved"}
	if warning != nil {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

// BulkBlockHandler blocks many dates at once: an explicit list, a contiguous
// start/end range (expanded inclusively), or both combined.
func (h *ScheduleHandler) BulkBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Dates      []string `json:"dates"`
		RangeStart string   `json:"rangeStart"`
		RangeEnd   string   `json:"rangeEnd"`
		Reason     string   `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid bulk block request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	combined := req.Dates
	if req.RangeStart != "" && req.RangeEnd != "" {
		expanded, err := schedule.ExpandRange(req.RangeStart, req.RangeEnd)
		if err != nil {
			respondScheduleError(c, err)
			return
		}
		combined = append(combined, expanded...)
	}

	// Individual picks may repeat dates the expanded range already covers;
	// count each date once so the response matches what actually got blocked.
	seen := make(map[string]bool, len(combined))
	dates := make([]string, 0, len(combined))
	for _, date := range combined {
		if seen[date] {
			continue
		}
		seen[date] = true
		dates = append(dates, date)
	}

	warnings, err := h.Service.BulkBlock(c.Request.Context(), providerID, dates, req.Reason, time.Now())
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	resp := gin.H{"message": "Dates blocked", "blockedCount": len(dates)}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteOverrideHandler removes the override for :date, reverting the date
// to holiday settings and the weekly pattern.
func (h *ScheduleHandler) DeleteOverrideHandler(c *gin.Context) {
	providerID, ok := providerIDFromContext(c)
	if !ok {
		return
	}

	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date in path"})
		return
	}

	if err := h.Service.DeleteOverride(c.Request.Context(), providerID, date); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override removed"})
}
