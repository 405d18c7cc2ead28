package booking

import (
	"fmt"
	"strings"
	"time"

	"washhub/models"
	"washhub/services/schedule"
)

// Action is a console operation proposed against a booking.
type Action string

const (
	ActionStart      Action = "start"
	ActionComplete   Action = "complete"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
)

// allowedActions is the full transition table. A booked job can be started,
// cancelled or rescheduled; a job underway can only be taken to completion.
// Terminal and delivery-chain statuses accept nothing from this console.
var allowedActions = map[models.BookingStatus]map[Action]bool{
	models.StatusBooked: {
		ActionStart:      true,
		ActionCancel:     true,
		ActionReschedule: true,
	},
	models.StatusInProgress: {
		ActionComplete: true,
	},
}

// CanApply reports whether the transition table permits the action from the
// given status. Time guards are checked by the transition functions, not here.
func CanApply(status models.BookingStatus, action Action) bool {
	return allowedActions[status][action]
}

// Start moves a booked job into progress. Legal only while the slot has not
// fully elapsed; a job whose window is already past cannot be started.
func Start(b models.Booking, now time.Time) (models.Booking, error) {
	if !CanApply(b.Status, ActionStart) {
		return b, illegal(ActionStart, b.Status)
	}
	if b.Slot.Elapsed(now) {
		return b, fmt.Errorf("%w: cannot start %s, slot ended %s %s", ErrIllegalTransition, b.ID, b.Slot.Date, b.Slot.EndTime)
	}
	out := b
	out.Status = models.StatusInProgress
	out.UpdatedAt = now
	return out, nil
}

// Complete finishes a job underway. No time guard: completion may
// legitimately happen after the slot's nominal end.
func Complete(b models.Booking, now time.Time) (models.Booking, error) {
	if !CanApply(b.Status, ActionComplete) {
		return b, illegal(ActionComplete, b.Status)
	}
	out := b
	out.Status = models.StatusCompleted
	out.UpdatedAt = now
	return out, nil
}

// Cancel cancels a booked job. The reason is mandatory; cancellation is
// irreversible from this console.
func Cancel(b models.Booking, reason string, now time.Time) (models.Booking, error) {
	if !CanApply(b.Status, ActionCancel) {
		return b, illegal(ActionCancel, b.Status)
	}
	if strings.TrimSpace(reason) == "" {
		return b, ErrReasonRequired
	}
	out := b
	out.Status = models.StatusCancelled
	out.CancelReason = reason
	out.UpdatedAt = now
	return out, nil
}

// Reschedule moves a booked job to a new slot. The target must sit inside the
// partner's enabled weekly blocks for that weekday and within the
// advance-booking horizon. Status stays booked; the "rescheduled" status
// value is an audit marker the booking intake applies to its timeline, never
// a state this machine produces.
func Reschedule(b models.Booking, newSlot models.Slot, weekly models.WeeklyAvailability, now time.Time) (models.Booking, error) {
	if !CanApply(b.Status, ActionReschedule) {
		return b, illegal(ActionReschedule, b.Status)
	}
	if newSlot.StartTime >= newSlot.EndTime {
		return b, fmt.Errorf("%w: [%s, %s)", schedule.ErrEmptyInterval, newSlot.StartTime, newSlot.EndTime)
	}

	date, err := time.Parse(models.DateFormat, newSlot.Date)
	if err != nil {
		return b, fmt.Errorf("%w: %q", schedule.ErrInvalidFormat, newSlot.Date)
	}
	horizon := now.AddDate(0, 0, weekly.MaxAdvanceBookingDays)
	if date.After(horizon) {
		return b, fmt.Errorf("%w: %s is beyond the %d-day booking horizon", ErrSlotUnavailable, newSlot.Date, weekly.MaxAdvanceBookingDays)
	}

	ok, err := schedule.SlotWithinAvailability(weekly, newSlot)
	if err != nil {
		return b, err
	}
	if !ok {
		return b, fmt.Errorf("%w: %s %s-%s is outside the partner's working hours", ErrSlotUnavailable, newSlot.Date, newSlot.StartTime, newSlot.EndTime)
	}

	out := b
	out.Slot = newSlot
	out.UpdatedAt = now
	return out, nil
}

func illegal(action Action, status models.BookingStatus) error {
	return fmt.Errorf("%w: %s from %q", ErrIllegalTransition, action, status)
}
