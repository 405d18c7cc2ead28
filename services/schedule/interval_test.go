package schedule

import (
	"errors"
	"reflect"
	"testing"

	"washhub/models"
)

func blocks(pairs ...string) []models.TimeBlock {
	if len(pairs)%2 != 0 {
		panic("blocks wants start/end pairs")
	}
	var out []models.TimeBlock
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, models.TimeBlock{
			Start: models.TimeOfDay(pairs[i]),
			End:   models.TimeOfDay(pairs[i+1]),
		})
	}
	return out
}

func TestInsertIntoEmpty(t *testing.T) {
	got, err := Insert(nil, models.TimeBlock{Start: "09:00", End: "11:30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := blocks("09:00", "11:30"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInsertRejectsEmptyInterval(t *testing.T) {
	existing := blocks("09:00", "12:00")
	for _, b := range []models.TimeBlock{
		{Start: "10:00", End: "10:00"},
		{Start: "11:00", End: "10:00"},
	} {
		if _, err := Insert(existing, b); !errors.Is(err, ErrEmptyInterval) {
			t.Errorf("Insert(%v): want ErrEmptyInterval, got %v", b, err)
		}
	}
}

func TestInsertMergesOnTouch(t *testing.T) {
	got, err := Insert(blocks("09:00", "12:00"), models.TimeBlock{Start: "12:00", End: "15:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := blocks("09:00", "15:00"); !reflect.DeepEqual(got, want) {
		t.Errorf("adjacent blocks must merge: got %v, want %v", got, want)
	}
}

func TestInsertMergesOverlapChain(t *testing.T) {
	existing := blocks("08:00", "10:00", "11:00", "13:00", "15:00", "16:00")
	// Bridges the first two blocks, leaves the third alone.
	got, err := Insert(existing, models.TimeBlock{Start: "09:30", End: "11:30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := blocks("08:00", "13:00", "15:00", "16:00"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInsertContainedBlockIsNoop(t *testing.T) {
	existing := blocks("09:00", "18:00")
	got, err := Insert(existing, models.TimeBlock{Start: "10:00", End: "11:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, existing) {
		t.Errorf("covered insert must not change the shape: got %v", got)
	}
}

func TestInsertIdempotent(t *testing.T) {
	nb := models.TimeBlock{Start: "10:00", End: "14:00"}
	once, err := Insert(blocks("08:00", "09:00"), nb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := Insert(once, nb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second insert of the same block changed the shape: %v vs %v", once, twice)
	}
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	existing := blocks("09:00", "12:00")
	snapshot := blocks("09:00", "12:00")
	if _, err := Insert(existing, models.TimeBlock{Start: "11:00", End: "13:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(existing, snapshot) {
		t.Errorf("input slice was mutated: %v", existing)
	}
}

func TestRemoveSplitsBlock(t *testing.T) {
	got, err := Remove(blocks("09:00", "18:00"), models.TimeBlock{Start: "12:00", End: "13:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := blocks("09:00", "12:00", "13:00", "18:00"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRemoveFullCoverage(t *testing.T) {
	got, err := Remove(blocks("09:00", "12:00"), models.TimeBlock{Start: "08:00", End: "13:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("fully covered block must vanish, got %v", got)
	}
}

func TestRemoveAcrossTwoBlocks(t *testing.T) {
	existing := blocks("08:00", "10:00", "11:00", "13:00")
	got, err := Remove(existing, models.TimeBlock{Start: "09:30", End: "12:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := blocks("08:00", "09:30", "12:00", "13:00"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRemoveNoOverlapIsNoop(t *testing.T) {
	existing := blocks("09:00", "12:00")
	got, err := Remove(existing, models.TimeBlock{Start: "13:00", End: "14:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, existing) {
		t.Errorf("got %v, want unchanged %v", got, existing)
	}
}

func TestRemoveRejectsEmptyInterval(t *testing.T) {
	if _, err := Remove(blocks("09:00", "12:00"), models.TimeBlock{Start: "10:00", End: "10:00"}); !errors.Is(err, ErrEmptyInterval) {
		t.Errorf("want ErrEmptyInterval, got %v", err)
	}
}

func TestRemoveAt(t *testing.T) {
	existing := blocks("08:00", "10:00", "11:00", "13:00")

	// Point inside a block removes the whole block.
	got := RemoveAt(existing, "11:30")
	if want := blocks("08:00", "10:00"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Point in a gap is a no-op.
	got = RemoveAt(existing, "10:30")
	if !reflect.DeepEqual(got, existing) {
		t.Errorf("got %v, want unchanged %v", got, existing)
	}

	// The end bound is exclusive.
	got = RemoveAt(existing, "10:00")
	if !reflect.DeepEqual(got, existing) {
		t.Errorf("point at a block's end must not remove it: got %v", got)
	}
}

// TestOperationSequencesKeepInvariant drives a fixed mixed sequence of
// inserts and removes and checks the canonical-form invariant after each
// step.
func TestOperationSequencesKeepInvariant(t *testing.T) {
	type step struct {
		op  EditOp
		rng models.TimeBlock
	}
	steps := []step{
		{OpInsert, models.TimeBlock{Start: "09:00", End: "10:00"}},
		{OpInsert, models.TimeBlock{Start: "14:00", End: "16:00"}},
		{OpInsert, models.TimeBlock{Start: "10:00", End: "11:00"}},
		{OpRemove, models.TimeBlock{Start: "09:30", End: "10:30"}},
		{OpInsert, models.TimeBlock{Start: "08:00", End: "20:00"}},
		{OpRemove, models.TimeBlock{Start: "12:00", End: "12:30"}},
		{OpRemove, models.TimeBlock{Start: "00:00", End: "23:59"}},
		{OpInsert, models.TimeBlock{Start: "06:30", End: "07:00"}},
	}

	var cur []models.TimeBlock
	for i, s := range steps {
		var err error
		switch s.op {
		case OpInsert:
			cur, err = Insert(cur, s.rng)
		case OpRemove:
			cur, err = Remove(cur, s.rng)
		}
		if err != nil {
			t.Fatalf("step %d: unexpected error %v", i, err)
		}
		if err := CheckBlocks(cur); err != nil {
			t.Fatalf("step %d: invariant broken: %v (blocks %v)", i, err, cur)
		}
	}
}

func TestCheckBlocks(t *testing.T) {
	cases := []struct {
		name    string
		in      []models.TimeBlock
		wantErr bool
	}{
		{name: "empty set", in: nil},
		{name: "canonical", in: blocks("09:00", "10:00", "11:00", "12:00")},
		{name: "touching", in: blocks("09:00", "10:00", "10:00", "12:00"), wantErr: true},
		{name: "overlapping", in: blocks("09:00", "11:00", "10:00", "12:00"), wantErr: true},
		{name: "unsorted", in: blocks("11:00", "12:00", "09:00", "10:00"), wantErr: true},
		{name: "empty block", in: blocks("09:00", "09:00"), wantErr: true},
		{name: "garbage time", in: blocks("morning", "10:00"), wantErr: true},
		{name: "unpadded hour", in: blocks("9:00", "9:30"), wantErr: true},
		{name: "unpadded and misordered", in: blocks("10:00", "11:00", "9:00", "9:30"), wantErr: true},
	}
	for _, tc := range cases {
		err := CheckBlocks(tc.in)
		if tc.wantErr && !errors.Is(err, ErrInvariantViolation) {
			t.Errorf("%s: want ErrInvariantViolation, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}
