package partner

import (
	"context"
	"fmt"
	"reflect"

	availabilityRepo "washhub/database/repository/availability"
	capacityRepo "washhub/database/repository/capacity"
	"washhub/models"

	"github.com/go-redis/redis/v8"
)

// PartnerService owns the schedule-editing session's server side: loading
// the published documents (or defaults) and committing them back as a pair.
type PartnerService interface {
	GetWeeklyAvailability(ctx context.Context, partnerID string) (*models.WeeklyAvailability, error)
	GetPartnerCapacity(ctx context.Context, partnerID string) (*models.PartnerCapacity, error)
	SaveSchedule(ctx context.Context, weekly models.WeeklyAvailability, capacity models.PartnerCapacity) error
}

// DefaultPartnerService is the production implementation.
type DefaultPartnerService struct {
	Availability availabilityRepo.AvailabilityRepository
	Capacity     capacityRepo.CapacityRepository
	Cache        *redis.Client
}

func NewDefaultPartnerService(
	availability availabilityRepo.AvailabilityRepository,
	capacity capacityRepo.CapacityRepository,
	cache *redis.Client,
) (*DefaultPartnerService, error) {
	if availability == nil || capacity == nil {
		return nil, fmt.Errorf("partner service initialization error: one or more dependencies are nil")
	}
	return &DefaultPartnerService{
		Availability: availability,
		Capacity:     capacity,
		Cache:        cache,
	}, nil
}

// HasUnsavedChanges compares an editing session's documents against the last
// successfully saved snapshot. The dirty flag and the save trigger belong to
// whoever drives the session; this is only the structural comparison.
func HasUnsavedChanges(weekly, savedWeekly models.WeeklyAvailability, capacity, savedCapacity models.PartnerCapacity) bool {
	return !reflect.DeepEqual(weekly, savedWeekly) || !reflect.DeepEqual(capacity, savedCapacity)
}
