package booking

import "errors"

var (
	// ErrIllegalTransition reports a status change not permitted from the
	// booking's current state. The booking is left untouched.
	ErrIllegalTransition = errors.New("illegal booking transition")

	// ErrReasonRequired reports a cancellation attempted without a reason.
	ErrReasonRequired = errors.New("cancellation reason required")

	// ErrSlotUnavailable reports a reschedule target outside the partner's
	// published availability or beyond the advance-booking horizon.
	ErrSlotUnavailable = errors.New("slot not available")
)
