package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"washhub/models"
	"washhub/services/schedule"
	"washhub/services/tasks"
	"washhub/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// reminderLead is how long before the slot start the customer reminder fires.
const reminderLead = 30 * time.Minute

// ListWeek fetches the partner's bookings for a calendar range, ordered by
// date then start time.
func (s *DefaultBookingService) ListWeek(ctx context.Context, partnerID, fromDate, toDate string) ([]models.Booking, error) {
	if _, err := time.Parse(models.DateFormat, fromDate); err != nil {
		return nil, fmt.Errorf("%w: %q", schedule.ErrInvalidFormat, fromDate)
	}
	if _, err := time.Parse(models.DateFormat, toDate); err != nil {
		return nil, fmt.Errorf("%w: %q", schedule.ErrInvalidFormat, toDate)
	}
	bookings, err := s.Bookings.ListByPartnerAndDateRange(ctx, partnerID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// StartBooking moves a booked job into progress.
func (s *DefaultBookingService) StartBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}

	updated, err := Start(*b, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.UpdateStatus(ctx, id, updated.Status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	utils.GetLogger().Info("booking started", zap.String("bookingID", id))
	return &updated, nil
}

// CompleteBooking finishes a job underway.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}

	updated, err := Complete(*b, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.UpdateStatus(ctx, id, updated.Status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	utils.GetLogger().Info("booking completed", zap.String("bookingID", id))
	return &updated, nil
}

// CancelBooking cancels a booked job with the given reason.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}

	updated, err := Cancel(*b, reason, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.Cancel(ctx, id, reason); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", id), zap.String("reason", reason))
	return &updated, nil
}

// RescheduleBooking moves a booked job to a new slot after cross-checking the
// partner's published availability and the booking horizon. On success the
// customer reminder is re-enqueued for the new slot; reminder failures are
// logged and never fail the reschedule.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, id string, newSlot models.Slot) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}

	weekly, err := s.Availability.GetByPartnerID(ctx, b.PartnerID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		def := schedule.DefaultWeeklyAvailability(b.PartnerID)
		weekly = &def
	} else if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly availability: %w", err)
	}

	updated, err := Reschedule(*b, newSlot, *weekly, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.Reschedule(ctx, id, newSlot); err != nil {
		return nil, fmt.Errorf("failed to reschedule booking: %w", err)
	}

	s.enqueueReminder(updated)

	utils.GetLogger().Info("booking rescheduled",
		zap.String("bookingID", id),
		zap.String("date", newSlot.Date),
		zap.String("start", string(newSlot.StartTime)))
	return &updated, nil
}

func (s *DefaultBookingService) enqueueReminder(b models.Booking) {
	if s.Tasks == nil {
		return
	}
	logger := utils.GetLogger()

	startAt, err := b.Slot.StartAt(time.Local)
	if err != nil {
		logger.Warn("cannot schedule reminder for unparseable slot", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	payload := tasks.BookingReminderPayload{
		BookingID:  b.ID,
		PartnerID:  b.PartnerID,
		CustomerID: b.CustomerID,
		Slot:       b.Slot,
	}
	task, opts, err := tasks.NewBookingReminderTask(payload, startAt.Add(-reminderLead))
	if err != nil {
		logger.Warn("failed to build reminder task", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task", zap.String("bookingID", b.ID), zap.Error(err))
	}
}
