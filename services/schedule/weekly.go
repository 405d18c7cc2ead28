package schedule

import (
	"fmt"
	"time"

	"washhub/models"
)

// EditOp selects which interval operation a day-block edit applies.
type EditOp string

const (
	OpInsert EditOp = "insert"
	OpRemove EditOp = "remove"
)

// Default schedule handed to partners that have never published one: every
// day but Sunday open 09:00-18:00.
const (
	DefaultDayStart = models.TimeOfDay("09:00")
	DefaultDayEnd   = models.TimeOfDay("18:00")

	DefaultBufferTimeMinutes     = 15
	DefaultMaxAdvanceBookingDays = 30
)

// DefaultWeeklyAvailability builds the schedule used when a partner has no
// stored document yet. It is not persisted until the partner saves.
func DefaultWeeklyAvailability(partnerID string) models.WeeklyAvailability {
	w := models.WeeklyAvailability{
		PartnerID:             partnerID,
		BufferTimeMinutes:     DefaultBufferTimeMinutes,
		MaxAdvanceBookingDays: DefaultMaxAdvanceBookingDays,
	}
	for d := 0; d < 7; d++ {
		w.Days[d] = models.DayAvailability{
			DayOfWeek: d,
			IsEnabled: d != int(time.Sunday),
			Blocks:    []models.TimeBlock{{Start: DefaultDayStart, End: DefaultDayEnd}},
		}
	}
	return w
}

// SetDayEnabled toggles a day's enabled flag. Blocks are left untouched so
// re-enabling a day restores what the partner had authored.
func SetDayEnabled(w models.WeeklyAvailability, dayOfWeek int, enabled bool) (models.WeeklyAvailability, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return w, fmt.Errorf("%w: day of week %d", ErrInvariantViolation, dayOfWeek)
	}
	out := w
	out.Days[dayOfWeek].IsEnabled = enabled
	return out, nil
}

// EditDayBlocks applies one interval operation to a single day's blocks. The
// other six days are untouched; on error the original schedule is returned
// unchanged.
func EditDayBlocks(w models.WeeklyAvailability, dayOfWeek int, op EditOp, rng models.TimeBlock) (models.WeeklyAvailability, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return w, fmt.Errorf("%w: day of week %d", ErrInvariantViolation, dayOfWeek)
	}

	var (
		blocks []models.TimeBlock
		err    error
	)
	switch op {
	case OpInsert:
		blocks, err = Insert(w.Days[dayOfWeek].Blocks, rng)
	case OpRemove:
		blocks, err = Remove(w.Days[dayOfWeek].Blocks, rng)
	default:
		return w, fmt.Errorf("unknown edit op %q", op)
	}
	if err != nil {
		return w, err
	}

	out := w
	out.Days[dayOfWeek].Blocks = blocks
	return out, nil
}

// Validate checks the whole document: every day canonical, buffer
// non-negative, booking horizon positive. All violations are reported, not
// just the first.
func Validate(w models.WeeklyAvailability) []error {
	var errs []error
	for d := 0; d < 7; d++ {
		if w.Days[d].DayOfWeek != d {
			errs = append(errs, fmt.Errorf("%w: day %d labeled %d", ErrInvariantViolation, d, w.Days[d].DayOfWeek))
		}
		if err := CheckBlocks(w.Days[d].Blocks); err != nil {
			errs = append(errs, fmt.Errorf("day %d: %w", d, err))
		}
	}
	if w.BufferTimeMinutes < 0 {
		errs = append(errs, fmt.Errorf("%w: negative buffer time %d", ErrInvariantViolation, w.BufferTimeMinutes))
	}
	if w.MaxAdvanceBookingDays <= 0 {
		errs = append(errs, fmt.Errorf("%w: booking horizon must be positive, got %d", ErrInvariantViolation, w.MaxAdvanceBookingDays))
	}
	return errs
}

// SlotWithinAvailability reports whether a slot falls entirely inside one of
// the partner's enabled blocks on the slot's weekday.
func SlotWithinAvailability(w models.WeeklyAvailability, slot models.Slot) (bool, error) {
	date, err := time.Parse(models.DateFormat, slot.Date)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidFormat, slot.Date)
	}
	day := w.Day(int(date.Weekday()))
	if !day.IsEnabled {
		return false, nil
	}
	want := models.TimeBlock{Start: slot.StartTime, End: slot.EndTime}
	for _, b := range day.Blocks {
		if b.Covers(want) {
			return true, nil
		}
	}
	return false, nil
}
