package booking

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "washhub/database/repository/availability"
	bookingRepo "washhub/database/repository/booking"
	"washhub/models"

	"github.com/hibiken/asynq"
)

// BookingService exposes the console's booking operations. Every mutation is
// validated against the status state machine locally before the store is
// touched; the store is expected to re-validate but is not trusted to.
type BookingService interface {
	ListWeek(ctx context.Context, partnerID, fromDate, toDate string) ([]models.Booking, error)
	StartBooking(ctx context.Context, id string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, id string, newSlot models.Slot) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Availability availabilityRepo.AvailabilityRepository
	Tasks        *asynq.Client
	Now          func() time.Time
}

func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	availability availabilityRepo.AvailabilityRepository,
	tasks *asynq.Client,
) (*DefaultBookingService, error) {
	if bookings == nil || availability == nil {
		return nil, fmt.Errorf("booking service initialization error: one or more dependencies are nil")
	}
	return &DefaultBookingService{
		Bookings:     bookings,
		Availability: availability,
		Tasks:        tasks,
	}, nil
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
