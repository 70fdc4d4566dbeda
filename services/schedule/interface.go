// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	overrideRepo "github.com/CorbanSy/PropDash-sub002/database/repository/dateoverride"
	holidayRepo "github.com/CorbanSy/PropDash-sub002/database/repository/holidaysettings"
	jobRepo "github.com/CorbanSy/PropDash-sub002/database/repository/job"
	weeklyRepo "github.com/CorbanSy/PropDash-sub002/database/repository/weeklyschedule"
	"github.com/CorbanSy/PropDash-sub002/models"

	"github.com/go-redis/redis/v8"
)

// ScheduleService is the provider scheduling engine: weekly recurring hours,
// per-date overrides, holiday settings and calendar resolution. Methods that
// depend on "today" take it explicitly so callers (and tests) control the
// clock.
type ScheduleService interface {
	// Weekly recurring hours.
	GetWeeklySchedule(ctx context.Context, providerID string) (*models.WeeklySchedule, error)
	SaveWeeklySchedule(ctx context.Context, providerID string, days []models.WeeklyDaySchedule) ([]models.DayIssues, error)

	// Holiday settings, per year.
	GetHolidaySettings(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error)
	ToggleHolidayDate(ctx context.Context, providerID, date string) (*models.HolidaySettings, error)
	SetHolidayCustomHours(ctx context.Context, providerID, date string, block models.TimeBlock) (*models.HolidaySettings, error)
	ClearHolidayCustomHours(ctx context.Context, providerID, date string) (*models.HolidaySettings, error)
	BlockAllFederal(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error)
	ClearHolidayYear(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error)

	// Per-date overrides.
	ListOverrides(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error)
	SaveOverride(ctx context.Context, providerID string, override models.DateOverride, now time.Time) (*models.OverrideWarning, error)
	BulkBlock(ctx context.Context, providerID string, dates []string, reason string, now time.Time) ([]models.OverrideWarning, error)
	DeleteOverride(ctx context.Context, providerID, date string) error

	// Calendar resolution and job actions.
	BuildMonth(ctx context.Context, providerID string, year, month int, now time.Time) (*models.MonthView, error)
	DayDetail(ctx context.Context, providerID, date string, now time.Time) (*models.DayCell, error)
	RescheduleJob(ctx context.Context, providerID, jobID, newDate string, now time.Time) (*models.Job, error)
}

// DefaultScheduleService is the production scheduling engine.
type DefaultScheduleService struct {
	WeeklyRepo   weeklyRepo.WeeklyScheduleRepository
	HolidayRepo  holidayRepo.HolidaySettingsRepository
	OverrideRepo overrideRepo.DateOverrideRepository
	JobRepo      jobRepo.JobRepository

	// Cache is optional; nil disables the weekly-schedule read cache.
	Cache    *redis.Client
	CacheTTL time.Duration
}
