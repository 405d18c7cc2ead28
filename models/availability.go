package models

import "time"

// TimeOfDay is a clock time in canonical "HH:MM" form. Values sort
// chronologically as strings, so blocks can be ordered and compared without
// parsing. Construction and arithmetic live in services/schedule.
type TimeOfDay string

// TimeBlock is a half-open window [Start, End) within one day.
type TimeBlock struct {
	Start TimeOfDay `bson:"start" json:"start"`
	End   TimeOfDay `bson:"end" json:"end"`
}

// Contains reports whether t falls inside the block. The end bound is
// exclusive: a block 09:00-12:00 does not contain 12:00.
func (b TimeBlock) Contains(t TimeOfDay) bool {
	return b.Start <= t && t < b.End
}

// Covers reports whether other fits entirely inside this block.
func (b TimeBlock) Covers(other TimeBlock) bool {
	return b.Start <= other.Start && other.End <= b.End
}

// DayAvailability is one weekday's working hours. Blocks are kept sorted,
// disjoint and non-adjacent; they survive the day being disabled so
// re-enabling restores them.
type DayAvailability struct {
	DayOfWeek int         `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	IsEnabled bool        `bson:"isEnabled" json:"isEnabled"`
	Blocks    []TimeBlock `bson:"blocks" json:"blocks"`
}

// WeeklyAvailability is a partner's published recurring schedule, one
// document per partner.
type WeeklyAvailability struct {
	PartnerID             string             `bson:"partnerId" json:"partnerId"`
	Days                  [7]DayAvailability `bson:"days" json:"days"`
	BufferTimeMinutes     int                `bson:"bufferTimeMinutes" json:"bufferTimeMinutes"`
	MaxAdvanceBookingDays int                `bson:"maxAdvanceBookingDays" json:"maxAdvanceBookingDays"`
	UpdatedAt             time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Day returns the availability for a weekday, Sunday = 0.
func (w WeeklyAvailability) Day(dayOfWeek int) DayAvailability {
	return w.Days[dayOfWeek]
}
