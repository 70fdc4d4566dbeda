// File: services/schedule/calendar.go
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"
)

// BuildMonth resolves every day of a calendar month for one provider: weekly
// pattern, holiday settings, overrides and the job overlay, merged per day.
// Fully re-derived on every call; with at most seven weekdays and a few dozen
// overrides there is nothing worth caching incrementally.
func (s *DefaultScheduleService) BuildMonth(ctx context.Context, providerID string, year, month int, now time.Time) (*models.MonthView, error) {
	if month < 1 || month > 12 {
		return nil, NewError(CodeInvalidDate, "month must be 1-12, got %d", month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	weekly, err := s.GetWeeklySchedule(ctx, providerID)
	if err != nil {
		return nil, err
	}
	holidaySettings, err := s.GetHolidaySettings(ctx, providerID, year)
	if err != nil {
		return nil, err
	}
	overrides, err := s.OverrideRepo.GetRange(ctx, providerID, utils.DateKey(first), utils.DateKey(last))
	if err != nil {
		return nil, fmt.Errorf("failed to load date overrides: %w", err)
	}
	overrideByDate := make(map[string]*models.DateOverride, len(overrides))
	for i := range overrides {
		overrideByDate[overrides[i].Date] = &overrides[i]
	}

	jobs, err := s.JobRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	jobsByDate := make(map[string][]models.Job)
	for _, j := range jobs {
		key := utils.DateKey(j.ScheduledDate)
		jobsByDate[key] = append(jobsByDate[key], j)
	}

	view := &models.MonthView{Year: year, Month: month}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := utils.DateKey(d)
		classification := ResolveDate(d, now, weekly.Days, overrideByDate[key], holidaySettings)
		view.Days = append(view.Days, OverlayJobs(classification, jobsByDate[key]))
	}
	return view, nil
}

// DayDetail resolves a single date, with its jobs, for the day drawer.
func (s *DefaultScheduleService) DayDetail(ctx context.Context, providerID, date string, now time.Time) (*models.DayCell, error) {
	day, err := utils.ParseDateKey(date)
	if err != nil {
		return nil, NewError(CodeInvalidDate, "invalid date %q", date)
	}

	weekly, err := s.GetWeeklySchedule(ctx, providerID)
	if err != nil {
		return nil, err
	}
	holidaySettings, err := s.GetHolidaySettings(ctx, providerID, day.Year())
	if err != nil {
		return nil, err
	}
	override, err := s.OverrideRepo.GetByDate(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load date override: %w", err)
	}
	jobs, err := s.JobRepo.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	classification := ResolveDate(day, now, weekly.Days, override, holidaySettings)
	cell := OverlayJobs(classification, jobs)
	return &cell, nil
}

// RescheduleJob moves a job to a new calendar date, keeping its time of day.
// Cancelled jobs stay where they are, and nothing can be dragged into the past.
func (s *DefaultScheduleService) RescheduleJob(ctx context.Context, providerID, jobID, newDate string, now time.Time) (*models.Job, error) {
	target, err := utils.ParseDateKey(newDate)
	if err != nil {
		return nil, NewError(CodeInvalidDate, "invalid date %q", newDate)
	}
	if newDate < utils.DateKey(now) {
		return nil, NewError(CodePastDate, "cannot reschedule onto past date %s", newDate)
	}

	job, err := s.JobRepo.GetByID(ctx, providerID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, NewError(CodeNotFound, "job %s not found", jobID)
	}
	if !job.Active() {
		return nil, NewError(CodeJobCancelled, "job %s is cancelled and cannot be rescheduled", jobID)
	}

	old := job.ScheduledDate.In(time.Local)
	moved := time.Date(target.Year(), target.Month(), target.Day(),
		old.Hour(), old.Minute(), 0, 0, time.Local)
	if err := s.JobRepo.UpdateScheduledDate(ctx, providerID, jobID, moved); err != nil {
		return nil, fmt.Errorf("failed to reschedule job: %w", err)
	}

	job.ScheduledDate = moved
	return job, nil
}
