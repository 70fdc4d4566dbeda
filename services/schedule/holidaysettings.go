// File: services/schedule/holidaysettings.go
package schedule

import (
	"context"
	"fmt"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"
)

// GetHolidaySettings loads the provider's choices for a year, returning an
// empty record when none exist.
func (s *DefaultScheduleService) GetHolidaySettings(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error) {
	settings, err := s.HolidayRepo.Get(ctx, providerID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday settings: %w", err)
	}
	if settings == nil {
		settings = emptyHolidaySettings(providerID, year)
	}
	if settings.CustomHours == nil {
		settings.CustomHours = map[string]models.TimeBlock{}
	}
	return settings, nil
}

// ToggleHolidayDate moves one holiday date into or out of the blocked set.
// Unblocking also drops any custom hours attached to the date.
func (s *DefaultScheduleService) ToggleHolidayDate(ctx context.Context, providerID, date string) (*models.HolidaySettings, error) {
	year, err := yearOfDate(date)
	if err != nil {
		return nil, err
	}
	if _, ok := HolidaysByDate(year)[date]; !ok {
		return nil, NewError(CodeNotFound, "%s is not a recognized holiday", date)
	}

	settings, err := s.GetHolidaySettings(ctx, providerID, year)
	if err != nil {
		return nil, err
	}

	if settings.IsBlocked(date) {
		blocked := settings.BlockedDates[:0]
		for _, d := range settings.BlockedDates {
			if d != date {
				blocked = append(blocked, d)
			}
		}
		settings.BlockedDates = blocked
		delete(settings.CustomHours, date)
	} else {
		settings.BlockedDates = append(settings.BlockedDates, date)
	}

	return s.saveHolidaySettings(ctx, settings)
}

// SetHolidayCustomHours attaches a single block of custom hours to a blocked
// holiday. Custom hours win over the plain block at resolution time.
func (s *DefaultScheduleService) SetHolidayCustomHours(ctx context.Context, providerID, date string, block models.TimeBlock) (*models.HolidaySettings, error) {
	year, err := yearOfDate(date)
	if err != nil {
		return nil, err
	}
	if violations := ValidateBlock(block); len(violations) > 0 {
		return nil, NewError(CodeScheduleInvalid, "custom hours invalid: %s", violations[0].Message)
	}

	settings, err := s.GetHolidaySettings(ctx, providerID, year)
	if err != nil {
		return nil, err
	}
	if !settings.IsBlocked(date) {
		return nil, NewError(CodeNotBlocked, "custom hours require %s to be blocked first", date)
	}

	settings.CustomHours[date] = block
	return s.saveHolidaySettings(ctx, settings)
}

// ClearHolidayCustomHours removes custom hours from a holiday date, leaving
// the plain block in place.
func (s *DefaultScheduleService) ClearHolidayCustomHours(ctx context.Context, providerID, date string) (*models.HolidaySettings, error) {
	year, err := yearOfDate(date)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetHolidaySettings(ctx, providerID, year)
	if err != nil {
		return nil, err
	}
	delete(settings.CustomHours, date)
	return s.saveHolidaySettings(ctx, settings)
}

// BlockAllFederal adds every federal holiday of the year to the blocked set.
// Idempotent: dates already blocked are left alone, as are custom hours.
func (s *DefaultScheduleService) BlockAllFederal(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error) {
	settings, err := s.GetHolidaySettings(ctx, providerID, year)
	if err != nil {
		return nil, err
	}
	for _, h := range FederalHolidays(year) {
		if !settings.IsBlocked(h.Date) {
			settings.BlockedDates = append(settings.BlockedDates, h.Date)
		}
	}
	return s.saveHolidaySettings(ctx, settings)
}

// ClearHolidayYear empties both the blocked set and the custom-hours map for
// the selected year only; other years are untouched.
func (s *DefaultScheduleService) ClearHolidayYear(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error) {
	settings := emptyHolidaySettings(providerID, year)
	return s.saveHolidaySettings(ctx, settings)
}

func (s *DefaultScheduleService) saveHolidaySettings(ctx context.Context, settings *models.HolidaySettings) (*models.HolidaySettings, error) {
	if err := s.HolidayRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save holiday settings: %w", err)
	}
	return settings, nil
}

func emptyHolidaySettings(providerID string, year int) *models.HolidaySettings {
	return &models.HolidaySettings{
		ProviderID:   providerID,
		Year:         year,
		BlockedDates: []string{},
		CustomHours:  map[string]models.TimeBlock{},
	}
}

func yearOfDate(date string) (int, error) {
	t, err := utils.ParseDateKey(date)
	if err != nil {
		return 0, NewError(CodeInvalidDate, "invalid date %q, expected YYYY-MM-DD", date)
	}
	return t.Year(), nil
}
