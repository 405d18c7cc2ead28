// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"washhub/models"
)

func (r *mongoAvailabilityRepo) GetByPartnerID(ctx context.Context, partnerID string) (*models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"partnerId": partnerID}
	var weekly models.WeeklyAvailability
	if err := r.coll.FindOne(ctx, filter).Decode(&weekly); err != nil {
		return nil, err
	}
	return &weekly, nil
}

// Save replaces the partner's whole document. Replacement is idempotent, so
// a retried save after a partial failure is safe.
func (r *mongoAvailabilityRepo) Save(ctx context.Context, weekly models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	weekly.UpdatedAt = time.Now()
	filter := bson.M{"partnerId": weekly.PartnerID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, filter, weekly, opts)
	return err
}
