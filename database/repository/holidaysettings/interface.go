// File: database/repository/holidaysettings/interface.go
package holidayRepo

import (
	"context"

	"github.com/CorbanSy/PropDash-sub002/database"
	"github.com/CorbanSy/PropDash-sub002/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// HolidaySettingsRepository persists one document per (provider, year).
// A nil result from Get means the provider has no holiday choices that year.
type HolidaySettingsRepository interface {
	Get(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error)
	Upsert(ctx context.Context, settings *models.HolidaySettings) error
}

type mongoHolidayRepo struct {
	coll *mongo.Collection
}

// NewMongoHolidaySettingsRepo constructs a new MongoDB HolidaySettingsRepository.
func NewMongoHolidaySettingsRepo() HolidaySettingsRepository {
	return &mongoHolidayRepo{
		coll: database.DB().Collection("holiday_settings"),
	}
}
