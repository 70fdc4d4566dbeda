// File: database/repository/dateoverride/crud.go
package overrideRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CorbanSy/PropDash-sub002/models"
)

func (r *mongoOverrideRepo) GetByDate(ctx context.Context, providerID, date string) (*models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "date": date}
	var override models.DateOverride
	err := r.coll.FindOne(ctx, filter).Decode(&override)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *mongoOverrideRepo) GetRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Canonical YYYY-MM-DD keys sort lexicographically in date order.
	filter := bson.M{
		"provider_id": providerID,
		"date":        bson.M{"$gte": fromDate, "$lte": toDate},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var overrides []models.DateOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *mongoOverrideRepo) Upsert(ctx context.Context, override *models.DateOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if override.ID == "" {
		override.ID = uuid.New().String()
	}
	if override.CreatedAt.IsZero() {
		override.CreatedAt = time.Now()
	}

	filter := bson.M{"provider_id": override.ProviderID, "date": override.Date}
	update := bson.M{"$set": override}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoOverrideRepo) UpsertMany(ctx context.Context, overrides []models.DateOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(overrides))
	for i := range overrides {
		o := overrides[i]
		if o.ID == "" {
			o.ID = uuid.New().String()
		}
		if o.CreatedAt.IsZero() {
			o.CreatedAt = time.Now()
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"provider_id": o.ProviderID, "date": o.Date}).
			SetUpdate(bson.M{"$set": o}).
			SetUpsert(true))
	}

	_, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return err
}

func (r *mongoOverrideRepo) Delete(ctx context.Context, providerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "date": date}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteBefore removes overrides for dates strictly before the given key,
// across all providers. Past dates resolve to "past" ahead of any override,
// so expired records only take up space.
func (r *mongoOverrideRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
