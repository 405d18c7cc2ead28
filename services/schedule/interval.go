package schedule

import (
	"fmt"
	"sort"

	"washhub/models"
)

// Insert adds a block to a day's set and restores the canonical form: sorted
// by start, pairwise disjoint, adjacent blocks merged. The input slice is
// never mutated. Degenerate blocks (start >= end) fail with ErrEmptyInterval.
func Insert(blocks []models.TimeBlock, nb models.TimeBlock) ([]models.TimeBlock, error) {
	if nb.Start >= nb.End {
		return nil, fmt.Errorf("%w: [%s, %s)", ErrEmptyInterval, nb.Start, nb.End)
	}

	merged := make([]models.TimeBlock, 0, len(blocks)+1)
	merged = append(merged, blocks...)
	merged = append(merged, nb)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Start < merged[j].Start })

	// Single left-to-right sweep: a block starting at or before the previous
	// end folds into it, which merges both overlap and exact adjacency.
	out := merged[:1]
	for _, cur := range merged[1:] {
		prev := &out[len(out)-1]
		if cur.Start <= prev.End {
			if cur.End > prev.End {
				prev.End = cur.End
			}
			continue
		}
		out = append(out, cur)
	}
	return out, nil
}

// Remove carves a range out of a day's set. Each block is differenced
// independently: untouched when there is no overlap, dropped when fully
// covered, split into up to two remainders when the range lands in the
// middle. Splitting never creates adjacency between unrelated blocks, so the
// result needs no re-merge. The input slice is never mutated.
func Remove(blocks []models.TimeBlock, rng models.TimeBlock) ([]models.TimeBlock, error) {
	if rng.Start >= rng.End {
		return nil, fmt.Errorf("%w: [%s, %s)", ErrEmptyInterval, rng.Start, rng.End)
	}

	out := make([]models.TimeBlock, 0, len(blocks)+1)
	for _, b := range blocks {
		if rng.Start >= b.End || rng.End <= b.Start {
			out = append(out, b)
			continue
		}
		if b.Start < rng.Start {
			out = append(out, models.TimeBlock{Start: b.Start, End: rng.Start})
		}
		if rng.End < b.End {
			out = append(out, models.TimeBlock{Start: rng.End, End: b.End})
		}
	}
	return out, nil
}

// RemoveAt is the point-query form of Remove, used when a drag gesture
// collapses to (near) zero height: if the point falls inside a block the
// whole block is removed, otherwise the set is returned unchanged.
func RemoveAt(blocks []models.TimeBlock, point models.TimeOfDay) []models.TimeBlock {
	out := make([]models.TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Contains(point) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// CheckBlocks verifies the canonical-form invariant: every endpoint a
// zero-padded HH:MM string, every block non-empty, sorted by start, pairwise
// disjoint and non-adjacent. The padding check matters because every
// comparison in the model is lexicographic; an unpadded "9:00" sorts after
// "10:00" and would silently corrupt ordering and coverage checks.
func CheckBlocks(blocks []models.TimeBlock) error {
	for i, b := range blocks {
		for _, t := range []models.TimeOfDay{b.Start, b.End} {
			mins, err := Minutes(t)
			if err != nil {
				return fmt.Errorf("%w: block %d: %v", ErrInvariantViolation, i, err)
			}
			if fromMinutes(mins) != t {
				return fmt.Errorf("%w: block %d: %q is not canonical HH:MM", ErrInvariantViolation, i, t)
			}
		}
		if b.Start >= b.End {
			return fmt.Errorf("%w: block %d is empty [%s, %s)", ErrInvariantViolation, i, b.Start, b.End)
		}
		if i == 0 {
			continue
		}
		if blocks[i-1].End >= b.Start {
			return fmt.Errorf("%w: blocks %d and %d overlap or touch", ErrInvariantViolation, i-1, i)
		}
	}
	return nil
}
