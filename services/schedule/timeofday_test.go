package schedule

import (
	"errors"
	"testing"

	"washhub/models"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    models.TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:00", want: "09:00"},
		{in: "23:59", want: "23:59"},
		{in: "00:00", want: "00:00"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12:34x", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseTimeOfDay(%q): want ErrInvalidFormat, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToFraction(t *testing.T) {
	f, err := ToFraction("09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 0.375 {
		t.Errorf("ToFraction(09:00) = %v, want 0.375", f)
	}

	if _, err := ToFraction("nope"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("want ErrInvalidFormat, got %v", err)
	}
}

func TestFromFractionSnapsToGrid(t *testing.T) {
	cases := []struct {
		f    float64
		grid int
		want models.TimeOfDay
	}{
		{f: 0.375, grid: 30, want: "09:00"},
		{f: 0.38, grid: 30, want: "09:00"},  // 547.2 min snaps down
		{f: 0.395, grid: 30, want: "09:30"}, // 568.8 min snaps up
		{f: 0, grid: 30, want: "00:00"},
		{f: 1.0, grid: 30, want: "23:59"}, // end of day clamps
		{f: -0.1, grid: 30, want: "00:00"},
		{f: 0.5, grid: 0, want: "12:00"}, // non-positive grid falls back to default
	}
	for _, tc := range cases {
		if got := FromFraction(tc.f, tc.grid); got != tc.want {
			t.Errorf("FromFraction(%v, %d) = %q, want %q", tc.f, tc.grid, got, tc.want)
		}
	}
}

func TestFractionRoundTripOnGrid(t *testing.T) {
	// Any time already aligned to the grid must survive a round trip.
	for mins := 0; mins < MinutesPerDay; mins += DefaultGridMinutes {
		tod := fromMinutes(mins)
		f, err := ToFraction(tod)
		if err != nil {
			t.Fatalf("ToFraction(%q): %v", tod, err)
		}
		if got := FromFraction(f, DefaultGridMinutes); got != tod {
			t.Errorf("round trip %q -> %v -> %q", tod, f, got)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		in   models.TimeOfDay
		mins int
		want models.TimeOfDay
	}{
		{in: "09:00", mins: 90, want: "10:30"},
		{in: "23:30", mins: 60, want: "00:30"}, // wraps
		{in: "00:30", mins: -60, want: "23:30"},
	}
	for _, tc := range cases {
		got, err := AddMinutes(tc.in, tc.mins)
		if err != nil {
			t.Fatalf("AddMinutes(%q, %d): %v", tc.in, tc.mins, err)
		}
		if got != tc.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tc.in, tc.mins, got, tc.want)
		}
	}

	if _, err := AddMinutes("bad", 10); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("want ErrInvalidFormat, got %v", err)
	}
}

func TestEndOfService(t *testing.T) {
	got, err := EndOfService("16:00", 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "16:45" {
		t.Errorf("EndOfService(16:00, 45) = %q, want 16:45", got)
	}

	// A job cannot run past the end of its day.
	got, err = EndOfService("23:30", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "23:59" {
		t.Errorf("EndOfService(23:30, 90) = %q, want 23:59", got)
	}
}
