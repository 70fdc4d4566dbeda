// File: database/repository/dateoverride/interface.go
package overrideRepo

import (
	"context"

	"github.com/CorbanSy/PropDash-sub002/database"
	"github.com/CorbanSy/PropDash-sub002/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DateOverrideRepository persists at most one override per (provider, date).
// Upsert replaces any prior override for the date; Delete reverts the date
// to the weekly pattern.
type DateOverrideRepository interface {
	GetByDate(ctx context.Context, providerID, date string) (*models.DateOverride, error)
	GetRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error)
	Upsert(ctx context.Context, override *models.DateOverride) error
	UpsertMany(ctx context.Context, overrides []models.DateOverride) error
	Delete(ctx context.Context, providerID, date string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type mongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoDateOverrideRepo constructs a new MongoDB DateOverrideRepository.
func NewMongoDateOverrideRepo() DateOverrideRepository {
	return &mongoOverrideRepo{
		coll: database.DB().Collection("date_overrides"),
	}
}
