// File: database/repository/capacity/crud.go
package capacityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"washhub/models"
)

func (r *mongoCapacityRepo) GetByPartnerID(ctx context.Context, partnerID string) (*models.PartnerCapacity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"partnerId": partnerID}
	var capacity models.PartnerCapacity
	if err := r.coll.FindOne(ctx, filter).Decode(&capacity); err != nil {
		return nil, err
	}
	return &capacity, nil
}

func (r *mongoCapacityRepo) Save(ctx context.Context, capacity models.PartnerCapacity) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	capacity.UpdatedAt = time.Now()
	filter := bson.M{"partnerId": capacity.PartnerID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, filter, capacity, opts)
	return err
}
