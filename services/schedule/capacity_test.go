package schedule

import (
	"errors"
	"testing"

	"washhub/models"
)

func TestSetCapacity(t *testing.T) {
	pc := models.PartnerCapacity{PartnerID: "p1"}

	updated, err := SetCapacity(pc, models.CategoryExteriorWash, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bays(models.CategoryExteriorWash) != 3 {
		t.Errorf("bays = %d, want 3", updated.Bays(models.CategoryExteriorWash))
	}
	if pc.CapacityByCategory != nil {
		t.Error("input document was mutated")
	}

	if _, err := SetCapacity(pc, models.CategoryDetailing, -1); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("want ErrInvariantViolation, got %v", err)
	}

	// Zero bays is a valid way to switch a category off.
	updated, err = SetCapacity(updated, models.CategoryExteriorWash, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bays(models.CategoryExteriorWash) != 0 {
		t.Errorf("bays = %d, want 0", updated.Bays(models.CategoryExteriorWash))
	}
}

func TestSetBufferTime(t *testing.T) {
	pc := models.PartnerCapacity{PartnerID: "p1", BufferTimeMinutes: 15}

	updated, err := SetBufferTime(pc, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.BufferTimeMinutes != 30 {
		t.Errorf("buffer = %d, want 30", updated.BufferTimeMinutes)
	}
	if pc.BufferTimeMinutes != 15 {
		t.Error("input document was mutated")
	}

	if _, err := SetBufferTime(pc, -1); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("want ErrInvariantViolation, got %v", err)
	}
}

func TestValidateCapacity(t *testing.T) {
	pc := models.PartnerCapacity{
		PartnerID: "p1",
		CapacityByCategory: map[models.ServiceCategory]int{
			models.CategoryExteriorWash: 2,
			models.CategoryDetailing:    -3,
		},
		BufferTimeMinutes: -10,
	}
	errs := ValidateCapacity(pc)
	if len(errs) != 2 {
		t.Fatalf("want 2 violations, got %d: %v", len(errs), errs)
	}
}
