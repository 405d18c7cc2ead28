package schedule

import (
	"fmt"

	"washhub/models"
)

// SetCapacity sets the bay count for one service category. Bays must be
// non-negative; no upper bound is enforced here (input caps are a UI policy).
// The input document is never mutated.
func SetCapacity(pc models.PartnerCapacity, category models.ServiceCategory, bays int) (models.PartnerCapacity, error) {
	if bays < 0 {
		return pc, fmt.Errorf("%w: negative bay count %d for %s", ErrInvariantViolation, bays, category)
	}
	out := pc
	out.CapacityByCategory = make(map[models.ServiceCategory]int, len(pc.CapacityByCategory)+1)
	for c, n := range pc.CapacityByCategory {
		out.CapacityByCategory[c] = n
	}
	out.CapacityByCategory[category] = bays
	return out, nil
}

// SetBufferTime sets the minimum gap between consecutive jobs. The editing
// session mirrors the same value into the weekly availability document.
func SetBufferTime(pc models.PartnerCapacity, minutes int) (models.PartnerCapacity, error) {
	if minutes < 0 {
		return pc, fmt.Errorf("%w: negative buffer time %d", ErrInvariantViolation, minutes)
	}
	out := pc
	out.BufferTimeMinutes = minutes
	return out, nil
}

// ValidateCapacity checks a capacity document: no negative bay counts, no
// negative buffer.
func ValidateCapacity(pc models.PartnerCapacity) []error {
	var errs []error
	for category, bays := range pc.CapacityByCategory {
		if bays < 0 {
			errs = append(errs, fmt.Errorf("%w: negative bay count %d for %s", ErrInvariantViolation, bays, category))
		}
	}
	if pc.BufferTimeMinutes < 0 {
		errs = append(errs, fmt.Errorf("%w: negative buffer time %d", ErrInvariantViolation, pc.BufferTimeMinutes))
	}
	return errs
}
