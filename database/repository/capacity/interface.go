// File: database/repository/capacity/interface.go
package capacityRepo

import (
	"context"

	"washhub/database"
	"washhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CapacityRepository persists per-partner bay counts as one document.
type CapacityRepository interface {
	GetByPartnerID(ctx context.Context, partnerID string) (*models.PartnerCapacity, error)
	Save(ctx context.Context, capacity models.PartnerCapacity) error
}

type mongoCapacityRepo struct {
	coll *mongo.Collection
}

// NewMongoCapacityRepo constructs a new MongoDB CapacityRepository.
func NewMongoCapacityRepo() CapacityRepository {
	db := database.MongoClient.Database("washhub")
	return &mongoCapacityRepo{
		coll: db.Collection("partner_capacity"),
	}
}
