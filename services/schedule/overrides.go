// File: services/schedule/overrides.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ExpandRange returns every date key between start and end inclusive, in
// order. Reversed endpoints are tolerated: the range tool's second click may
// land before the first.
func ExpandRange(start, end string) ([]string, error) {
	from, err := utils.ParseDateKey(start)
	if err != nil {
		return nil, NewError(CodeInvalidDate, "invalid range start %q", start)
	}
	to, err := utils.ParseDateKey(end)
	if err != nil {
		return nil, NewError(CodeInvalidDate, "invalid range end %q", end)
	}
	if to.Before(from) {
		from, to = to, from
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, utils.DateKey(d))
	}
	return dates, nil
}

// ListOverrides returns the provider's overrides within an inclusive date range.
func (s *DefaultScheduleService) ListOverrides(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error) {
	if _, err := utils.ParseDateKey(fromDate); err != nil {
		return nil, NewError(CodeInvalidDate, "invalid date %q", fromDate)
	}
	if _, err := utils.ParseDateKey(toDate); err != nil {
		return nil, NewError(CodeInvalidDate, "invalid date %q", toDate)
	}
	overrides, err := s.OverrideRepo.GetRange(ctx, providerID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load date overrides: %w", err)
	}
	return overrides, nil
}

// SaveOverride validates and persists one per-date exception, replacing any
// prior override for that date. Blocking a date that still holds active jobs
// succeeds but returns a warning carrying those jobs (warn-and-allow); the UI
// surfaces it so the provider can drag the jobs elsewhere.
func (s *DefaultScheduleService) SaveOverride(ctx context.Context, providerID string, override models.DateOverride, now time.Time) (*models.OverrideWarning, error) {
	if _, err := utils.ParseDateKey(override.Date); err != nil {
		return nil, NewError(CodeInvalidDate, "invalid date %q", override.Date)
	}
	if override.Date < utils.DateKey(now) {
		return nil, NewError(CodePastDate, "cannot override past date %s", override.Date)
	}

	switch override.Kind {
	case models.OverrideBlocked:
		override.Blocks = nil
	case models.OverrideCustom:
		if len(override.Blocks) == 0 {
			return nil, NewError(CodeScheduleInvalid, "custom override needs at least one time block")
		}
		for i, block := range override.Blocks {
			if violations := ValidateBlock(block); len(violations) > 0 {
				return nil, NewError(CodeScheduleInvalid, "block %d: %s", i, violations[0].Message)
			}
		}
		if conflicts := DetectOverlaps(override.Blocks); len(conflicts) > 0 {
			return nil, NewError(CodeScheduleInvalid, "blocks %d and %d overlap", conflicts[0].IndexA, conflicts[0].IndexB)
		}
	default:
		return nil, NewError(CodeScheduleInvalid, "unknown override kind %q", override.Kind)
	}

	override.ProviderID = providerID
	if err := s.OverrideRepo.Upsert(ctx, &override); err != nil {
		return nil, fmt.Errorf("failed to save date override: %w", err)
	}

	if override.Kind == models.OverrideBlocked {
		return s.activeJobWarning(ctx, providerID, override.Date)
	}
	return nil, nil
}

// BulkBlock blocks every date in the list with a shared reason. Validation is
// all-or-nothing: a single bad date fails the whole batch before any write.
func (s *DefaultScheduleService) BulkBlock(ctx context.Context, providerID string, dates []string, reason string, now time.Time) ([]models.OverrideWarning, error) {
	if len(dates) == 0 {
		return nil, NewError(CodeScheduleInvalid, "no dates selected")
	}
	today := utils.DateKey(now)
	seen := make(map[string]bool, len(dates))
	overrides := make([]models.DateOverride, 0, len(dates))
	for _, date := range dates {
		if _, err := utils.ParseDateKey(date); err != nil {
			return nil, NewError(CodeInvalidDate, "invalid date %q", date)
		}
		if date < today {
			return nil, NewError(CodePastDate, "cannot block past date %s", date)
		}
		if seen[date] {
			continue
		}
		seen[date] = true
		overrides = append(overrides, models.DateOverride{
			ProviderID: providerID,
			Date:       date,
			Kind:       models.OverrideBlocked,
			Reason:     reason,
		})
	}

	if err := s.OverrideRepo.UpsertMany(ctx, overrides); err != nil {
		return nil, fmt.Errorf("failed to save date overrides: %w", err)
	}

	var warnings []models.OverrideWarning
	for _, o := range overrides {
		if w, err := s.activeJobWarning(ctx, providerID, o.Date); err == nil && w != nil {
			warnings = append(warnings, *w)
		}
	}
	return warnings, nil
}

// DeleteOverride removes the exception for one date; resolution falls back to
// holiday settings and the weekly pattern.
func (s *DefaultScheduleService) DeleteOverride(ctx context.Context, providerID, date string) error {
	if _, err := utils.ParseDateKey(date); err != nil {
		return NewError(CodeInvalidDate, "invalid date %q", date)
	}
	if err := s.OverrideRepo.Delete(ctx, providerID, date); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewError(CodeNotFound, "no override exists for %s", date)
		}
		return fmt.Errorf("failed to delete date override: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) activeJobWarning(ctx context.Context, providerID, date string) (*models.OverrideWarning, error) {
	jobs, err := s.JobRepo.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		// The block itself already saved; a warning lookup failure is not fatal.
		utils.GetLogger().Warn("Failed to check jobs for blocked date",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(err))
		return nil, nil
	}
	var active []models.Job
	for _, j := range jobs {
		if j.Active() {
			active = append(active, j)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}
	return &models.OverrideWarning{Date: date, Jobs: active}, nil
}
