// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"washhub/database"
	"washhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository is the console's view of the availability service:
// whole-document reads and replacements, nothing incremental.
type AvailabilityRepository interface {
	GetByPartnerID(ctx context.Context, partnerID string) (*models.WeeklyAvailability, error)
	Save(ctx context.Context, weekly models.WeeklyAvailability) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("washhub")
	return &mongoAvailabilityRepo{
		coll: db.Collection("weekly_availability"),
	}
}
