// File: services/schedule/weekly.go
package schedule

import (
	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"
)

// Defaults applied when a provider has never saved hours.
var defaultHours = models.TimeBlock{Start: "09:00", End: "17:00"}

// Heuristic caps for the add-block default, in minutes from midnight.
const (
	addBlockStartGap = 120  // new block starts 2h after the previous end
	addBlockEndGap   = 240  // and ends 4h after the previous end
	addBlockStartCap = 1320 // 22:00
	addBlockEndCap   = 1380 // 23:00
)

// DefaultWeek returns the starting pattern for a new provider: weekdays
// enabled 09:00-17:00, weekends present but disabled. Always 7 entries,
// Sunday first.
func DefaultWeek() []models.WeeklyDaySchedule {
	week := make([]models.WeeklyDaySchedule, 7)
	for wd := 0; wd < 7; wd++ {
		week[wd] = models.WeeklyDaySchedule{
			Weekday: wd,
			Enabled: wd != 0 && wd != 6,
			Blocks:  []models.TimeBlock{defaultHours},
		}
	}
	return week
}

// cloneWeek deep-copies a week so every mutation below can return a fresh
// value without touching its input. The editors rely on this: stale
// references from a second open view never see half-applied edits.
func cloneWeek(days []models.WeeklyDaySchedule) []models.WeeklyDaySchedule {
	out := make([]models.WeeklyDaySchedule, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Blocks = append([]models.TimeBlock(nil), d.Blocks...)
	}
	return out
}

// ToggleDay flips a weekday's enabled flag. Blocks are kept either way so
// re-enabling a day restores its previous hours.
func ToggleDay(days []models.WeeklyDaySchedule, weekday int) []models.WeeklyDaySchedule {
	out := cloneWeek(days)
	for i := range out {
		if out[i].Weekday == weekday {
			out[i].Enabled = !out[i].Enabled
		}
	}
	return out
}

// AddBlock appends a new block to a weekday using the split-shift heuristic:
// start 2 hours after the previous block's end (capped at 22:00), end 4 hours
// after (capped at 23:00). An empty day gets the 09:00-17:00 default.
func AddBlock(days []models.WeeklyDaySchedule, weekday int) []models.WeeklyDaySchedule {
	out := cloneWeek(days)
	for i := range out {
		if out[i].Weekday != weekday {
			continue
		}
		out[i].Blocks = append(out[i].Blocks, nextDefaultBlock(out[i].Blocks))
	}
	return out
}

func nextDefaultBlock(blocks []models.TimeBlock) models.TimeBlock {
	if len(blocks) == 0 {
		return defaultHours
	}
	prevEnd, err := utils.TimeToMinutes(blocks[len(blocks)-1].End)
	if err != nil {
		return defaultHours
	}
	start := prevEnd + addBlockStartGap
	if start > addBlockStartCap {
		start = addBlockStartCap
	}
	end := prevEnd + addBlockEndGap
	if end > addBlockEndCap {
		end = addBlockEndCap
	}
	startClock, _ := utils.MinutesToTime(start)
	endClock, _ := utils.MinutesToTime(end)
	return models.TimeBlock{Start: startClock, End: endClock}
}

// RemoveBlock deletes one block from a weekday. A day is never left empty:
// removing the last block re-inserts the 09:00-17:00 default.
func RemoveBlock(days []models.WeeklyDaySchedule, weekday, index int) []models.WeeklyDaySchedule {
	out := cloneWeek(days)
	for i := range out {
		if out[i].Weekday != weekday || index < 0 || index >= len(out[i].Blocks) {
			continue
		}
		out[i].Blocks = append(out[i].Blocks[:index], out[i].Blocks[index+1:]...)
		if len(out[i].Blocks) == 0 {
			out[i].Blocks = []models.TimeBlock{defaultHours}
		}
	}
	return out
}

// UpdateBlock replaces one block's hours on a weekday.
func UpdateBlock(days []models.WeeklyDaySchedule, weekday, index int, block models.TimeBlock) []models.WeeklyDaySchedule {
	out := cloneWeek(days)
	for i := range out {
		if out[i].Weekday == weekday && index >= 0 && index < len(out[i].Blocks) {
			out[i].Blocks[index] = block
		}
	}
	return out
}

// NormalizeWeek orders days Sunday-first and fills any weekday missing from
// the input with a disabled default; output always has exactly 7 entries.
func NormalizeWeek(days []models.WeeklyDaySchedule) []models.WeeklyDaySchedule {
	week := make([]models.WeeklyDaySchedule, 7)
	present := make([]bool, 7)
	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			continue
		}
		week[d.Weekday] = d
		week[d.Weekday].Blocks = append([]models.TimeBlock(nil), d.Blocks...)
		present[d.Weekday] = true
	}
	for wd := 0; wd < 7; wd++ {
		if !present[wd] {
			week[wd] = models.WeeklyDaySchedule{
				Weekday: wd,
				Blocks:  []models.TimeBlock{defaultHours},
			}
		}
	}
	return week
}
