// File: database/repository/weeklyschedule/interface.go
package weeklyRepo

import (
	"context"

	"github.com/CorbanSy/PropDash-sub002/database"
	"github.com/CorbanSy/PropDash-sub002/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WeeklyScheduleRepository persists one week document per provider. A nil result
// from Get means the provider has never saved hours and defaults apply.
type WeeklyScheduleRepository interface {
	Get(ctx context.Context, providerID string) (*models.WeeklySchedule, error)
	Upsert(ctx context.Context, schedule *models.WeeklySchedule) error
}

type mongoWeeklyRepo struct {
	coll *mongo.Collection
}

// NewMongoWeeklyScheduleRepo constructs a new MongoDB WeeklyScheduleRepository.
func NewMongoWeeklyScheduleRepo() WeeklyScheduleRepository {
	return &mongoWeeklyRepo{
		coll: database.DB().Collection("weekly_schedules"),
	}
}
