// File: services/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"go.uber.org/zap"
)

func weeklyCacheKey(providerID string) string {
	return utils.ScheduleCachePrefix + "weekly:" + providerID
}

// GetWeeklySchedule returns the provider's persisted week, or the built-in
// defaults when nothing has been saved yet. Reads go through the Redis cache
// when one is configured; cache trouble falls back to the repository.
func (s *DefaultScheduleService) GetWeeklySchedule(ctx context.Context, providerID string) (*models.WeeklySchedule, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, weeklyCacheKey(providerID)).Result(); err == nil {
			var cached models.WeeklySchedule
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			logger.Warn("Discarding undecodable weekly schedule cache entry",
				zap.String("providerID", providerID))
		}
	}

	stored, err := s.WeeklyRepo.Get(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly schedule: %w", err)
	}
	if stored == nil {
		stored = &models.WeeklySchedule{ProviderID: providerID, Days: DefaultWeek()}
	} else {
		stored.Days = NormalizeWeek(stored.Days)
	}

	s.cacheWeekly(ctx, stored)
	return stored, nil
}

// SaveWeeklySchedule validates and persists the full week. A non-empty issue
// list means nothing was written: partial or overlapping schedules never
// reach storage.
func (s *DefaultScheduleService) SaveWeeklySchedule(ctx context.Context, providerID string, days []models.WeeklyDaySchedule) ([]models.DayIssues, error) {
	week := NormalizeWeek(days)
	if issues := ValidateWeek(week); len(issues) > 0 {
		return issues, NewError(CodeScheduleInvalid, "weekly schedule has %d day(s) with issues", len(issues))
	}

	schedule := &models.WeeklySchedule{ProviderID: providerID, Days: week}
	if err := s.WeeklyRepo.Upsert(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to save weekly schedule: %w", err)
	}

	s.invalidateWeekly(ctx, providerID)
	return nil, nil
}

func (s *DefaultScheduleService) cacheWeekly(ctx context.Context, schedule *models.WeeklySchedule) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(schedule)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, weeklyCacheKey(schedule.ProviderID), raw, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache weekly schedule",
			zap.String("providerID", schedule.ProviderID), zap.Error(err))
	}
}

func (s *DefaultScheduleService) invalidateWeekly(ctx context.Context, providerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, weeklyCacheKey(providerID)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate weekly schedule cache",
			zap.String("providerID", providerID), zap.Error(err))
	}
}
