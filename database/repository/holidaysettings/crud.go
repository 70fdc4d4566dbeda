// File: database/repository/holidaysettings/crud.go
package holidayRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CorbanSy/PropDash-sub002/models"
)

func (r *mongoHolidayRepo) Get(ctx context.Context, providerID string, year int) (*models.HolidaySettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "year": year}
	var settings models.HolidaySettings
	err := r.coll.FindOne(ctx, filter).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *mongoHolidayRepo) Upsert(ctx context.Context, settings *models.HolidaySettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": settings.ProviderID, "year": settings.Year}
	update := bson.M{"$set": settings}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
