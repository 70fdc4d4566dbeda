// File: services/schedule/conflicts.go
package schedule

import (
	"fmt"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"
)

const (
	// MinBlockMinutes is the shortest bookable block.
	MinBlockMinutes = 30
	// MaxBlockMinutes is the longest single block (12 hours).
	MaxBlockMinutes = 720
)

// ValidateBlock checks one time block against every rule and returns all
// violations, not just the first; the editor shows them simultaneously.
// A malformed clock string suppresses the arithmetic checks, which would
// otherwise report nonsense on garbage input.
func ValidateBlock(block models.TimeBlock) []models.BlockViolation {
	var violations []models.BlockViolation

	start, errStart := utils.TimeToMinutes(block.Start)
	end, errEnd := utils.TimeToMinutes(block.End)
	if errStart != nil || errEnd != nil {
		return append(violations, models.BlockViolation{
			Kind:    models.ViolationInvalidFormat,
			Message: fmt.Sprintf("times must be HH:MM, got %q-%q", block.Start, block.End),
		})
	}

	if start >= end {
		violations = append(violations, models.BlockViolation{
			Kind:    models.ViolationStartNotBefore,
			Message: "start time must be before end time",
		})
	}
	duration := end - start
	if duration > 0 && duration < MinBlockMinutes {
		violations = append(violations, models.BlockViolation{
			Kind:    models.ViolationTooShort,
			Message: fmt.Sprintf("block must be at least %d minutes", MinBlockMinutes),
		})
	}
	if duration > MaxBlockMinutes {
		violations = append(violations, models.BlockViolation{
			Kind:    models.ViolationTooLong,
			Message: fmt.Sprintf("block cannot exceed %d minutes", MaxBlockMinutes),
		})
	}
	return violations
}

// DetectOverlaps scans every pair of blocks once (i<j) and reports one
// conflict per overlapping pair. Blocks that fail to parse are skipped here;
// ValidateBlock already reports them.
func DetectOverlaps(blocks []models.TimeBlock) []models.Conflict {
	type span struct {
		start, end int
		ok         bool
	}
	spans := make([]span, len(blocks))
	for i, b := range blocks {
		s, errS := utils.TimeToMinutes(b.Start)
		e, errE := utils.TimeToMinutes(b.End)
		spans[i] = span{start: s, end: e, ok: errS == nil && errE == nil}
	}

	var conflicts []models.Conflict
	for i := 0; i < len(spans); i++ {
		if !spans[i].ok {
			continue
		}
		for j := i + 1; j < len(spans); j++ {
			if !spans[j].ok {
				continue
			}
			if utils.RangesOverlap(spans[i].start, spans[i].end, spans[j].start, spans[j].end) {
				conflicts = append(conflicts, models.Conflict{IndexA: i, IndexB: j})
			}
		}
	}
	return conflicts
}

// ValidateWeek aggregates block violations and overlap conflicts for every
// weekday. Disabled days are still validated so re-enabling a day never
// resurrects broken hours. An empty result means the week is safe to persist.
func ValidateWeek(days []models.WeeklyDaySchedule) []models.DayIssues {
	var issues []models.DayIssues
	for _, day := range days {
		di := models.DayIssues{Weekday: day.Weekday}
		for i, block := range day.Blocks {
			if v := ValidateBlock(block); len(v) > 0 {
				di.Blocks = append(di.Blocks, models.BlockIssues{BlockIndex: i, Violations: v})
			}
		}
		di.Conflicts = DetectOverlaps(day.Blocks)
		if len(di.Blocks) > 0 || len(di.Conflicts) > 0 {
			issues = append(issues, di)
		}
	}
	return issues
}
