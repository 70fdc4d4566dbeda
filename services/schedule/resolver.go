// File: services/schedule/resolver.go
package schedule

import (
	"time"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"
)

// Labels attached to holiday-derived classifications.
const (
	LabelHoliday      = "Holiday"
	LabelHolidayHours = "Holiday Hours"
)

// ResolveDate classifies one calendar date by evaluating the layers in strict
// precedence order, first match wins:
//
//  1. dates before today are past, full stop;
//  2. holiday settings (blocked, or custom hours when both are set);
//  3. a per-date override (blocked or custom);
//  4. the weekly pattern for that weekday, when enabled;
//  5. otherwise unavailable.
//
// Holiday rules outrank per-date overrides so a stale override can never
// contradict a freshly blocked holiday. The caller supplies "today"
// explicitly; the resolver never reads the ambient clock.
func ResolveDate(
	date time.Time,
	today time.Time,
	week []models.WeeklyDaySchedule,
	override *models.DateOverride,
	holidaySettings *models.HolidaySettings,
) models.DateClassification {
	key := utils.DateKey(date)
	result := models.DateClassification{Date: key}

	// Canonical keys compare lexicographically in date order.
	if key < utils.DateKey(today) {
		result.State = models.StatePast
		return result
	}

	if holidaySettings != nil && holidaySettings.IsBlocked(key) {
		if block, ok := holidaySettings.CustomHoursFor(key); ok {
			result.State = models.StateCustom
			result.Label = LabelHolidayHours
			result.Blocks = []models.TimeBlock{block}
			return result
		}
		result.State = models.StateBlocked
		result.Label = LabelHoliday
		return result
	}

	if override != nil {
		switch override.Kind {
		case models.OverrideBlocked:
			result.State = models.StateBlocked
			result.Reason = override.Reason
			return result
		case models.OverrideCustom:
			result.State = models.StateCustom
			result.Blocks = append([]models.TimeBlock(nil), override.Blocks...)
			return result
		}
	}

	weekday := int(date.Weekday())
	for _, day := range week {
		if day.Weekday != weekday {
			continue
		}
		if day.Enabled {
			result.State = models.StateAvailable
			result.Blocks = append([]models.TimeBlock(nil), day.Blocks...)
			return result
		}
		break
	}

	result.State = models.StateUnavailable
	return result
}

// OverlayJobs builds the display cell for a resolved date. Any non-cancelled
// job promotes the display state to booked so existing bookings stay visible
// on blocked days; the underlying schedule state is kept for block/unblock
// actions.
func OverlayJobs(classification models.DateClassification, jobs []models.Job) models.DayCell {
	cell := models.DayCell{
		DateClassification: classification,
		DisplayState:       classification.State,
	}
	for i := range jobs {
		if jobs[i].Active() {
			cell.DisplayState = models.DisplayBooked
		}
	}
	cell.Jobs = jobs
	return cell
}
