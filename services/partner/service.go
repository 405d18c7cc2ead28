package partner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"washhub/config"
	"washhub/models"
	"washhub/services/schedule"
	"washhub/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const defaultScheduleCacheTTL = 5 * time.Minute

func scheduleCacheKey(partnerID string) string {
	return "schedule:" + partnerID
}

func scheduleCacheTTL() time.Duration {
	if s := config.AppConfig.ScheduleCacheTTL; s > 0 {
		return time.Duration(s) * time.Second
	}
	return defaultScheduleCacheTTL
}

// GetWeeklyAvailability returns the partner's published schedule. A partner
// that has never saved one gets the default schedule; it is not persisted
// until the partner commits it.
func (s *DefaultPartnerService) GetWeeklyAvailability(ctx context.Context, partnerID string) (*models.WeeklyAvailability, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, scheduleCacheKey(partnerID)).Result(); err == nil {
			var weekly models.WeeklyAvailability
			if err := json.Unmarshal([]byte(cached), &weekly); err == nil {
				return &weekly, nil
			}
			logger.Warn("discarding undecodable cached schedule", zap.String("partnerID", partnerID))
		} else if err != redis.Nil {
			logger.Warn("schedule cache read failed", zap.Error(err))
		}
	}

	weekly, err := s.Availability.GetByPartnerID(ctx, partnerID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		def := schedule.DefaultWeeklyAvailability(partnerID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly availability: %w", err)
	}

	s.cacheSchedule(ctx, *weekly)
	return weekly, nil
}

// GetPartnerCapacity returns the partner's capacity document, or an empty
// one when none has been saved yet.
func (s *DefaultPartnerService) GetPartnerCapacity(ctx context.Context, partnerID string) (*models.PartnerCapacity, error) {
	capacity, err := s.Capacity.GetByPartnerID(ctx, partnerID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.PartnerCapacity{
			PartnerID:          partnerID,
			CapacityByCategory: map[models.ServiceCategory]int{},
			BufferTimeMinutes:  schedule.DefaultBufferTimeMinutes,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partner capacity: %w", err)
	}
	return capacity, nil
}

// SaveSchedule commits both documents. The two saves are issued concurrently
// and are not atomic: if either fails the whole save is reported failed and
// the caller keeps its unsaved changes, but the save that succeeded is not
// rolled back. A retry re-sends both whole documents, which is idempotent.
func (s *DefaultPartnerService) SaveSchedule(ctx context.Context, weekly models.WeeklyAvailability, capacity models.PartnerCapacity) error {
	logger := utils.GetLogger()

	if weekly.PartnerID == "" || weekly.PartnerID != capacity.PartnerID {
		return fmt.Errorf("%w: availability and capacity must belong to the same partner", schedule.ErrInvariantViolation)
	}
	if weekly.BufferTimeMinutes != capacity.BufferTimeMinutes {
		return fmt.Errorf("%w: buffer time out of sync (%d vs %d)", schedule.ErrInvariantViolation,
			weekly.BufferTimeMinutes, capacity.BufferTimeMinutes)
	}
	if errs := schedule.Validate(weekly); len(errs) > 0 {
		return fmt.Errorf("invalid weekly availability: %w", errors.Join(errs...))
	}
	if errs := schedule.ValidateCapacity(capacity); len(errs) > 0 {
		return fmt.Errorf("invalid partner capacity: %w", errors.Join(errs...))
	}

	availErrCh := make(chan error, 1)
	capErrCh := make(chan error, 1)
	go func() {
		availErrCh <- s.Availability.Save(ctx, weekly)
	}()
	go func() {
		capErrCh <- s.Capacity.Save(ctx, capacity)
	}()

	availErr := <-availErrCh
	capErr := <-capErrCh
	if availErr != nil {
		availErr = fmt.Errorf("failed to save weekly availability: %w", availErr)
	}
	if capErr != nil {
		capErr = fmt.Errorf("failed to save partner capacity: %w", capErr)
	}
	if availErr != nil || capErr != nil {
		return errors.Join(availErr, capErr)
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, scheduleCacheKey(weekly.PartnerID)).Err(); err != nil {
			logger.Warn("failed to invalidate schedule cache", zap.String("partnerID", weekly.PartnerID), zap.Error(err))
		}
	}

	logger.Info("schedule saved",
		zap.String("partnerID", weekly.PartnerID),
		zap.Int("bufferMinutes", weekly.BufferTimeMinutes))
	return nil
}

func (s *DefaultPartnerService) cacheSchedule(ctx context.Context, weekly models.WeeklyAvailability) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(weekly)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, scheduleCacheKey(weekly.PartnerID), data, scheduleCacheTTL()).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache schedule", zap.String("partnerID", weekly.PartnerID), zap.Error(err))
	}
}
