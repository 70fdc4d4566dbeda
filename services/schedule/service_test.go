package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repositories backing the service tests. Same contracts as the
// Mongo implementations: nil means "no document", Delete errors on a miss.

type fakeWeeklyRepo struct {
	byProvider map[string]*models.WeeklySchedule
	upserts    int
}

func newFakeWeeklyRepo() *fakeWeeklyRepo {
	return &fakeWeeklyRepo{byProvider: map[string]*models.WeeklySchedule{}}
}

func (r *fakeWeeklyRepo) Get(_ context.Context, providerID string) (*models.WeeklySchedule, error) {
	s, ok := r.byProvider[providerID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeWeeklyRepo) Upsert(_ context.Context, schedule *models.WeeklySchedule) error {
	copied := *schedule
	r.byProvider[schedule.ProviderID] = &copied
	r.upserts++
	return nil
}

type fakeHolidayRepo struct {
	byKey map[string]*models.HolidaySettings
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{byKey: map[string]*models.HolidaySettings{}}
}

func holidayKey(providerID string, year int) string {
	return fmt.Sprintf("%s/%d", providerID, year)
}

func (r *fakeHolidayRepo) Get(_ context.Context, providerID string, year int) (*models.HolidaySettings, error) {
	s, ok := r.byKey[holidayKey(providerID, year)]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeHolidayRepo) Upsert(_ context.Context, settings *models.HolidaySettings) error {
	copied := *settings
	r.byKey[holidayKey(settings.ProviderID, settings.Year)] = &copied
	return nil
}

type fakeOverrideRepo struct {
	byKey map[string]models.DateOverride

	// deleteErr, when set, is returned by Delete to simulate storage trouble.
	deleteErr error
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{byKey: map[string]models.DateOverride{}}
}

func overrideKey(providerID, date string) string {
	return providerID + "/" + date
}

func (r *fakeOverrideRepo) GetByDate(_ context.Context, providerID, date string) (*models.DateOverride, error) {
	o, ok := r.byKey[overrideKey(providerID, date)]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOverrideRepo) GetRange(_ context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error) {
	var out []models.DateOverride
	for _, o := range r.byKey {
		if o.ProviderID == providerID && o.Date >= fromDate && o.Date <= toDate {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeOverrideRepo) Upsert(_ context.Context, override *models.DateOverride) error {
	r.byKey[overrideKey(override.ProviderID, override.Date)] = *override
	return nil
}

func (r *fakeOverrideRepo) UpsertMany(_ context.Context, overrides []models.DateOverride) error {
	for _, o := range overrides {
		r.byKey[overrideKey(o.ProviderID, o.Date)] = o
	}
	return nil
}

func (r *fakeOverrideRepo) Delete(_ context.Context, providerID, date string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	key := overrideKey(providerID, date)
	if _, ok := r.byKey[key]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.byKey, key)
	return nil
}

func (r *fakeOverrideRepo) DeleteBefore(_ context.Context, date string) (int64, error) {
	var removed int64
	for key, o := range r.byKey {
		if o.Date < date {
			delete(r.byKey, key)
			removed++
		}
	}
	return removed, nil
}

type fakeJobRepo struct {
	jobs []models.Job
}

func (r *fakeJobRepo) GetByProviderID(_ context.Context, providerID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.ProviderID == providerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetByProviderAndDate(_ context.Context, providerID, date string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.ProviderID == providerID && utils.DateKey(j.ScheduledDate) == date {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, providerID, jobID string) (*models.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ProviderID == providerID && r.jobs[i].ID == jobID {
			copied := r.jobs[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepo) UpdateScheduledDate(_ context.Context, providerID, jobID string, newDate time.Time) error {
	for i := range r.jobs {
		if r.jobs[i].ProviderID == providerID && r.jobs[i].ID == jobID {
			r.jobs[i].ScheduledDate = newDate
			return nil
		}
	}
	return errors.New("job not found")
}

func newTestService() (*DefaultScheduleService, *fakeWeeklyRepo, *fakeHolidayRepo, *fakeOverrideRepo, *fakeJobRepo) {
	weekly := newFakeWeeklyRepo()
	holidays := newFakeHolidayRepo()
	overrides := newFakeOverrideRepo()
	jobs := &fakeJobRepo{}
	svc := &DefaultScheduleService{
		WeeklyRepo:   weekly,
		HolidayRepo:  holidays,
		OverrideRepo: overrides,
		JobRepo:      jobs,
	}
	return svc, weekly, holidays, overrides, jobs
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestGetWeeklyScheduleDefaults(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	got, err := svc.GetWeeklySchedule(context.Background(), "prov-1")
	require.NoError(t, err)
	assert.Equal(t, "prov-1", got.ProviderID)
	assert.Equal(t, DefaultWeek(), got.Days)
}

func TestSaveWeeklyScheduleRoundTrip(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	days := UpdateBlock(DefaultWeek(), 1, 0, models.TimeBlock{Start: "08:00", End: "16:00"})
	issues, err := svc.SaveWeeklySchedule(ctx, "prov-1", days)
	require.NoError(t, err)
	assert.Empty(t, issues)

	got, err := svc.GetWeeklySchedule(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, models.TimeBlock{Start: "08:00", End: "16:00"}, got.Days[1].Blocks[0])
}

func TestSaveWeeklyScheduleRejectsInvalidWeek(t *testing.T) {
	svc, weekly, _, _, _ := newTestService()

	days := UpdateBlock(DefaultWeek(), 1, 0, models.TimeBlock{Start: "17:00", End: "09:00"})
	issues, err := svc.SaveWeeklySchedule(context.Background(), "prov-1", days)
	assertCode(t, err, CodeScheduleInvalid)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Weekday)
	assert.Zero(t, weekly.upserts, "invalid weeks must never reach storage")
}

func TestSaveWeeklyScheduleNormalizesPartialInput(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	partial := []models.WeeklyDaySchedule{
		{Weekday: 2, Enabled: true, Blocks: []models.TimeBlock{{Start: "10:00", End: "14:00"}}},
	}
	issues, err := svc.SaveWeeklySchedule(ctx, "prov-1", partial)
	require.NoError(t, err)
	assert.Empty(t, issues)

	got, err := svc.GetWeeklySchedule(ctx, "prov-1")
	require.NoError(t, err)
	require.Len(t, got.Days, 7)
	assert.True(t, got.Days[2].Enabled)
	assert.False(t, got.Days[3].Enabled)
}

func TestToggleHolidayDate(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	t.Run("blocks a recognized holiday", func(t *testing.T) {
		settings, err := svc.ToggleHolidayDate(ctx, "prov-1", "2024-07-04")
		require.NoError(t, err)
		assert.True(t, settings.IsBlocked("2024-07-04"))
		assert.Equal(t, 2024, settings.Year)
	})

	t.Run("unblocking drops custom hours too", func(t *testing.T) {
		_, err := svc.SetHolidayCustomHours(ctx, "prov-1", "2024-07-04", models.TimeBlock{Start: "10:00", End: "14:00"})
		require.NoError(t, err)

		settings, err := svc.ToggleHolidayDate(ctx, "prov-1", "2024-07-04")
		require.NoError(t, err)
		assert.False(t, settings.IsBlocked("2024-07-04"))
		_, ok := settings.CustomHoursFor("2024-07-04")
		assert.False(t, ok)
	})

	t.Run("rejects non-holiday dates", func(t *testing.T) {
		_, err := svc.ToggleHolidayDate(ctx, "prov-1", "2024-03-05")
		assertCode(t, err, CodeNotFound)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := svc.ToggleHolidayDate(ctx, "prov-1", "July 4th")
		assertCode(t, err, CodeInvalidDate)
	})
}

func TestSetHolidayCustomHours(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	t.Run("requires the date to be blocked first", func(t *testing.T) {
		_, err := svc.SetHolidayCustomHours(ctx, "prov-1", "2024-12-25", models.TimeBlock{Start: "10:00", End: "14:00"})
		assertCode(t, err, CodeNotBlocked)
	})

	t.Run("stores hours on a blocked holiday", func(t *testing.T) {
		_, err := svc.ToggleHolidayDate(ctx, "prov-1", "2024-12-25")
		require.NoError(t, err)

		settings, err := svc.SetHolidayCustomHours(ctx, "prov-1", "2024-12-25", models.TimeBlock{Start: "10:00", End: "14:00"})
		require.NoError(t, err)
		block, ok := settings.CustomHoursFor("2024-12-25")
		require.True(t, ok)
		assert.Equal(t, models.TimeBlock{Start: "10:00", End: "14:00"}, block)
	})

	t.Run("rejects invalid hours", func(t *testing.T) {
		_, err := svc.SetHolidayCustomHours(ctx, "prov-1", "2024-12-25", models.TimeBlock{Start: "14:00", End: "10:00"})
		assertCode(t, err, CodeScheduleInvalid)
	})

	t.Run("clear removes hours but keeps the block", func(t *testing.T) {
		settings, err := svc.ClearHolidayCustomHours(ctx, "prov-1", "2024-12-25")
		require.NoError(t, err)
		_, ok := settings.CustomHoursFor("2024-12-25")
		assert.False(t, ok)
		assert.True(t, settings.IsBlocked("2024-12-25"))
	})
}

func TestBlockAllFederalIsIdempotent(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.BlockAllFederal(ctx, "prov-1", 2024)
	require.NoError(t, err)
	assert.Len(t, first.BlockedDates, 11)

	// Custom hours on one of them must survive a repeat call.
	_, err = svc.SetHolidayCustomHours(ctx, "prov-1", "2024-12-25", models.TimeBlock{Start: "09:00", End: "12:00"})
	require.NoError(t, err)

	second, err := svc.BlockAllFederal(ctx, "prov-1", 2024)
	require.NoError(t, err)
	assert.Len(t, second.BlockedDates, 11)
	_, ok := second.CustomHoursFor("2024-12-25")
	assert.True(t, ok)
}

func TestClearHolidayYearLeavesOtherYearsAlone(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.BlockAllFederal(ctx, "prov-1", 2024)
	require.NoError(t, err)
	_, err = svc.BlockAllFederal(ctx, "prov-1", 2025)
	require.NoError(t, err)

	cleared, err := svc.ClearHolidayYear(ctx, "prov-1", 2024)
	require.NoError(t, err)
	assert.Empty(t, cleared.BlockedDates)

	kept, err := svc.GetHolidaySettings(ctx, "prov-1", 2025)
	require.NoError(t, err)
	assert.Len(t, kept.BlockedDates, 11)
}

func TestExpandRange(t *testing.T) {
	t.Run("inclusive of both endpoints", func(t *testing.T) {
		dates, err := ExpandRange("2024-06-28", "2024-07-02")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-06-28", "2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"}, dates)
	})

	t.Run("single day range", func(t *testing.T) {
		dates, err := ExpandRange("2024-06-28", "2024-06-28")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-06-28"}, dates)
	})

	t.Run("reversed endpoints are swapped", func(t *testing.T) {
		dates, err := ExpandRange("2024-07-02", "2024-06-30")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-06-30", "2024-07-01", "2024-07-02"}, dates)
	})

	t.Run("bad endpoint fails", func(t *testing.T) {
		_, err := ExpandRange("2024-06-28", "soon")
		assertCode(t, err, CodeInvalidDate)
	})
}

func TestSaveOverride(t *testing.T) {
	now := localDate(2024, time.June, 5)

	t.Run("blocked override clears stray blocks", func(t *testing.T) {
		svc, _, _, overrides, _ := newTestService()
		warning, err := svc.SaveOverride(context.Background(), "prov-1", models.DateOverride{
			Date:   "2024-06-10",
			Kind:   models.OverrideBlocked,
			Reason: "Vacation",
			Blocks: []models.TimeBlock{{Start: "09:00", End: "17:00"}},
		}, now)
		require.NoError(t, err)
		assert.Nil(t, warning)

		saved := overrides.byKey[overrideKey("prov-1", "2024-06-10")]
		assert.Equal(t, "Vacation", saved.Reason)
		assert.Empty(t, saved.Blocks)
	})

	t.Run("custom override needs valid non-overlapping blocks", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()
		ctx := context.Background()

		_, err := svc.SaveOverride(ctx, "prov-1", models.DateOverride{
			Date: "2024-06-10", Kind: models.OverrideCustom,
		}, now)
		assertCode(t, err, CodeScheduleInvalid)

		_, err = svc.SaveOverride(ctx, "prov-1", models.DateOverride{
			Date: "2024-06-10", Kind: models.OverrideCustom,
			Blocks: []models.TimeBlock{{Start: "09:00", End: "12:00"}, {Start: "11:00", End: "13:00"}},
		}, now)
		assertCode(t, err, CodeScheduleInvalid)

		_, err = svc.SaveOverride(ctx, "prov-1", models.DateOverride{
			Date: "2024-06-10", Kind: models.OverrideCustom,
			Blocks: []models.TimeBlock{{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "18:00"}},
		}, now)
		require.NoError(t, err)
	})

	t.Run("rejects past and malformed dates", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()
		ctx := context.Background()

		_, err := svc.SaveOverride(ctx, "prov-1", models.DateOverride{
			Date: "2024-06-04", Kind: models.OverrideBlocked,
		}, now)
		assertCode(t, err, CodePastDate)

		_, err = svc.SaveOverride(ctx, "prov-1", models.DateOverride{
			Date: "06/10/2024", Kind: models.OverrideBlocked,
		}, now)
		assertCode(t, err, CodeInvalidDate)
	})

	t.Run("today is not past", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()
		_, err := svc.SaveOverride(context.Background(), "prov-1", models.DateOverride{
			Date: "2024-06-05", Kind: models.OverrideBlocked,
		}, now)
		require.NoError(t, err)
	})

	t.Run("blocking a date with active jobs warns but saves", func(t *testing.T) {
		svc, _, _, overrides, jobs := newTestService()
		jobs.jobs = []models.Job{
			{ID: "j1", ProviderID: "prov-1", ScheduledDate: localDate(2024, time.June, 10), Status: models.JobStatusConfirmed},
			{ID: "j2", ProviderID: "prov-1", ScheduledDate: localDate(2024, time.June, 10), Status: models.JobStatusCancelled},
		}

		warning, err := svc.SaveOverride(context.Background(), "prov-1", models.DateOverride{
			Date: "2024-06-10", Kind: models.OverrideBlocked, Reason: "Family",
		}, now)
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.Equal(t, "2024-06-10", warning.Date)
		require.Len(t, warning.Jobs, 1, "cancelled jobs do not warn")
		assert.Equal(t, "j1", warning.Jobs[0].ID)

		_, saved := overrides.byKey[overrideKey("prov-1", "2024-06-10")]
		assert.True(t, saved, "warn-and-allow still persists the block")
	})
}

func TestBulkBlock(t *testing.T) {
	now := localDate(2024, time.June, 5)

	t.Run("blocks every date once", func(t *testing.T) {
		svc, _, _, overrides, _ := newTestService()
		warnings, err := svc.BulkBlock(context.Background(), "prov-1",
			[]string{"2024-06-10", "2024-06-11", "2024-06-10"}, "Conference", now)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Len(t, overrides.byKey, 2)
		assert.Equal(t, "Conference", overrides.byKey[overrideKey("prov-1", "2024-06-11")].Reason)
	})

	t.Run("one bad date fails the whole batch", func(t *testing.T) {
		svc, _, _, overrides, _ := newTestService()
		_, err := svc.BulkBlock(context.Background(), "prov-1",
			[]string{"2024-06-10", "2024-06-01"}, "", now)
		assertCode(t, err, CodePastDate)
		assert.Empty(t, overrides.byKey, "all-or-nothing: nothing written")
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()
		_, err := svc.BulkBlock(context.Background(), "prov-1", nil, "", now)
		assertCode(t, err, CodeScheduleInvalid)
	})

	t.Run("collects warnings per affected date", func(t *testing.T) {
		svc, _, _, _, jobs := newTestService()
		jobs.jobs = []models.Job{
			{ID: "j1", ProviderID: "prov-1", ScheduledDate: localDate(2024, time.June, 10), Status: models.JobStatusPending},
		}
		warnings, err := svc.BulkBlock(context.Background(), "prov-1",
			[]string{"2024-06-10", "2024-06-11"}, "", now)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "2024-06-10", warnings[0].Date)
	})
}

func TestDeleteOverride(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	now := localDate(2024, time.June, 5)

	_, err := svc.SaveOverride(ctx, "prov-1", models.DateOverride{
		Date: "2024-06-10", Kind: models.OverrideBlocked,
	}, now)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOverride(ctx, "prov-1", "2024-06-10"))
	assertCode(t, svc.DeleteOverride(ctx, "prov-1", "2024-06-10"), CodeNotFound)
	assertCode(t, svc.DeleteOverride(ctx, "prov-1", "not-a-date"), CodeInvalidDate)
}

func TestDeleteOverrideStorageFailureIsNotNotFound(t *testing.T) {
	svc, _, _, overrides, _ := newTestService()
	overrides.deleteErr = errors.New("connection reset")

	err := svc.DeleteOverride(context.Background(), "prov-1", "2024-06-10")
	require.Error(t, err)
	var domainErr *Error
	assert.False(t, errors.As(err, &domainErr),
		"a repository outage must surface as a persistence failure, not a domain rejection")
	assert.ErrorIs(t, err, overrides.deleteErr)
}

func TestListOverrides(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	now := localDate(2024, time.June, 5)

	for _, date := range []string{"2024-06-10", "2024-06-20", "2024-07-01"} {
		_, err := svc.SaveOverride(ctx, "prov-1", models.DateOverride{Date: date, Kind: models.OverrideBlocked}, now)
		require.NoError(t, err)
	}

	got, err := svc.ListOverrides(ctx, "prov-1", "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-06-10", got[0].Date)
	assert.Equal(t, "2024-06-20", got[1].Date)

	_, err = svc.ListOverrides(ctx, "prov-1", "June", "2024-06-30")
	assertCode(t, err, CodeInvalidDate)
}

func TestBuildMonth(t *testing.T) {
	svc, _, _, _, jobs := newTestService()
	ctx := context.Background()
	now := localDate(2024, time.June, 5)

	_, err := svc.ToggleHolidayDate(ctx, "prov-1", "2024-06-19") // Juneteenth
	require.NoError(t, err)
	_, err = svc.SaveOverride(ctx, "prov-1", models.DateOverride{
		Date: "2024-06-10", Kind: models.OverrideBlocked, Reason: "Vacation",
	}, now)
	require.NoError(t, err)
	jobs.jobs = []models.Job{
		{ID: "j1", ProviderID: "prov-1", ScheduledDate: localDate(2024, time.June, 12), Status: models.JobStatusConfirmed},
	}

	view, err := svc.BuildMonth(ctx, "prov-1", 2024, 6, now)
	require.NoError(t, err)
	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 6, view.Month)
	require.Len(t, view.Days, 30)

	day := func(n int) models.DayCell { return view.Days[n-1] }

	assert.Equal(t, models.StatePast, day(1).State)
	assert.Equal(t, models.StatePast, day(4).State)
	assert.NotEqual(t, models.StatePast, day(5).State)

	assert.Equal(t, models.StateBlocked, day(10).State) // Monday override
	assert.Equal(t, "Vacation", day(10).Reason)

	assert.Equal(t, models.StateBlocked, day(19).State) // blocked holiday
	assert.Equal(t, LabelHoliday, day(19).Label)

	assert.Equal(t, models.StateAvailable, day(12).State) // Wednesday, booked
	assert.Equal(t, models.DisplayBooked, day(12).DisplayState)
	require.Len(t, day(12).Jobs, 1)

	assert.Equal(t, models.StateUnavailable, day(9).State) // a future Sunday
	assert.Equal(t, models.StateAvailable, day(17).State)  // a plain Monday
}

func TestBuildMonthRejectsBadMonth(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	_, err := svc.BuildMonth(context.Background(), "prov-1", 2024, 13, time.Now())
	assertCode(t, err, CodeInvalidDate)
}

func TestDayDetail(t *testing.T) {
	svc, _, _, _, jobs := newTestService()
	ctx := context.Background()
	now := localDate(2024, time.June, 5)
	jobs.jobs = []models.Job{
		{ID: "j1", ProviderID: "prov-1", ScheduledDate: localDate(2024, time.June, 17), Status: models.JobStatusConfirmed},
	}

	cell, err := svc.DayDetail(ctx, "prov-1", "2024-06-17", now)
	require.NoError(t, err)
	assert.Equal(t, models.StateAvailable, cell.State)
	assert.Equal(t, models.DisplayBooked, cell.DisplayState)
	require.Len(t, cell.Jobs, 1)

	_, err = svc.DayDetail(ctx, "prov-1", "someday", now)
	assertCode(t, err, CodeInvalidDate)
}

func TestRescheduleJob(t *testing.T) {
	now := localDate(2024, time.June, 5)

	t.Run("moves the date and keeps the time of day", func(t *testing.T) {
		svc, _, _, _, jobs := newTestService()
		jobs.jobs = []models.Job{{
			ID: "j1", ProviderID: "prov-1", Status: models.JobStatusConfirmed,
			ScheduledDate: time.Date(2024, time.June, 10, 14, 30, 0, 0, time.Local),
		}}

		moved, err := svc.RescheduleJob(context.Background(), "prov-1", "j1", "2024-06-20", now)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-20", utils.DateKey(moved.ScheduledDate))
		assert.Equal(t, 14, moved.ScheduledDate.Hour())
		assert.Equal(t, 30, moved.ScheduledDate.Minute())
		assert.Equal(t, moved.ScheduledDate, jobs.jobs[0].ScheduledDate, "repository was updated")
	})

	t.Run("cancelled jobs stay put", func(t *testing.T) {
		svc, _, _, _, jobs := newTestService()
		jobs.jobs = []models.Job{{
			ID: "j1", ProviderID: "prov-1", Status: models.JobStatusCancelled,
			ScheduledDate: localDate(2024, time.June, 10),
		}}
		_, err := svc.RescheduleJob(context.Background(), "prov-1", "j1", "2024-06-20", now)
		assertCode(t, err, CodeJobCancelled)
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()
		_, err := svc.RescheduleJob(context.Background(), "prov-1", "ghost", "2024-06-20", now)
		assertCode(t, err, CodeNotFound)
	})

	t.Run("cannot land in the past", func(t *testing.T) {
		svc, _, _, _, jobs := newTestService()
		jobs.jobs = []models.Job{{
			ID: "j1", ProviderID: "prov-1", Status: models.JobStatusConfirmed,
			ScheduledDate: localDate(2024, time.June, 10),
		}}
		_, err := svc.RescheduleJob(context.Background(), "prov-1", "j1", "2024-06-01", now)
		assertCode(t, err, CodePastDate)
	})
}
