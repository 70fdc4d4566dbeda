// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"
	"time"

	"github.com/CorbanSy/PropDash-sub002/database"
	"github.com/CorbanSy/PropDash-sub002/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository is the thin slice of provider storage this backend
// needs: identity and token-hash lookup for the auth middleware.
type ProviderRepository interface {
	GetByIDWithProjection(providerID string, projection bson.M) (*models.Provider, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	return &mongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
}

func (r *mongoProviderRepo) GetByIDWithProjection(providerID string, projection bson.M) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := optionsWithProjection(projection)
	var prov models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": providerID}, opts...).Decode(&prov)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prov, nil
}
