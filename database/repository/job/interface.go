// File: database/repository/job/interface.go
package jobRepo

import (
	"context"
	"time"

	"github.com/CorbanSy/PropDash-sub002/database"
	"github.com/CorbanSy/PropDash-sub002/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// JobRepository gives the scheduling core read access to booked jobs plus the
// single write it owns: moving a job's scheduled date (drag-to-reschedule).
type JobRepository interface {
	GetByProviderID(ctx context.Context, providerID string) ([]models.Job, error)
	GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Job, error)
	GetByID(ctx context.Context, providerID, jobID string) (*models.Job, error)
	UpdateScheduledDate(ctx context.Context, providerID, jobID string, newDate time.Time) error
}

type mongoJobRepo struct {
	coll *mongo.Collection
}

// NewMongoJobRepo constructs a new MongoDB JobRepository.
func NewMongoJobRepo() JobRepository {
	return &mongoJobRepo{
		coll: database.DB().Collection("jobs"),
	}
}
