package models

import "time"

// Canonical formats for slot dates and clock times.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// BookingStatus is the closed set of states a booking can report.
type BookingStatus string

const (
	StatusBooked         BookingStatus = "booked"
	StatusInProgress     BookingStatus = "in_progress"
	StatusCompleted      BookingStatus = "completed"
	StatusPicked         BookingStatus = "picked"
	StatusOutForDelivery BookingStatus = "out_for_delivery"
	StatusDelivered      BookingStatus = "delivered"
	StatusCancelled      BookingStatus = "cancelled"
	StatusRescheduled    BookingStatus = "rescheduled"
)

// AllStatuses lists every status value the booking system can report.
var AllStatuses = []BookingStatus{
	StatusBooked,
	StatusInProgress,
	StatusCompleted,
	StatusPicked,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
	StatusRescheduled,
}

// DeliveryChainStatuses belong to the fulfillment-tracking flow. They are
// rendered as given data; the console never transitions into or out of them.
var DeliveryChainStatuses = []BookingStatus{
	StatusPicked,
	StatusOutForDelivery,
	StatusDelivered,
}

// Slot is a booking's concrete reserved window on the calendar.
type Slot struct {
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	StartTime TimeOfDay `bson:"startTime" json:"startTime"`
	EndTime   TimeOfDay `bson:"endTime" json:"endTime"`
}

// StartAt resolves the slot's absolute start instant in loc.
func (s Slot) StartAt(loc *time.Location) (time.Time, error) {
	return s.at(string(s.StartTime), loc)
}

// EndAt resolves the slot's absolute end instant in loc.
func (s Slot) EndAt(loc *time.Location) (time.Time, error) {
	return s.at(string(s.EndTime), loc)
}

func (s Slot) at(clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, s.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(TimeFormat, clock)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// Elapsed reports whether the slot's window has fully passed ("in the past"
// means now is at or beyond the slot end).
func (s Slot) Elapsed(now time.Time) bool {
	end, err := s.EndAt(now.Location())
	if err != nil {
		return false
	}
	return !now.Before(end)
}

// ActiveAt reports whether now lies inside the slot's own window. Surfaces
// that suppress starting a job before its nominal start time check this in
// addition to the state machine's guard.
func (s Slot) ActiveAt(now time.Time) bool {
	start, err := s.StartAt(now.Location())
	if err != nil {
		return false
	}
	end, err := s.EndAt(now.Location())
	if err != nil {
		return false
	}
	return !now.Before(start) && !now.After(end)
}

// BookedService describes the purchased service on a booking.
type BookedService struct {
	Category        ServiceCategory `bson:"category" json:"category"`
	Name            string          `bson:"name" json:"name"`
	DurationMinutes int             `bson:"durationMinutes" json:"durationMinutes"`
}

// Vehicle is the customer vehicle a booking is for.
type Vehicle struct {
	Make         string `bson:"make" json:"make"`
	Model        string `bson:"model" json:"model"`
	LicensePlate string `bson:"licensePlate" json:"licensePlate"`
}

// Pricing carries the amounts computed by the earnings system. Read-only
// here; this console never derives prices.
type Pricing struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

// Booking is the demand-side unit: a single reserved slot tied to a customer,
// vehicle and service. Created by the booking intake externally; this console
// only reads it and proposes status transitions.
type Booking struct {
	ID           string        `bson:"id" json:"id"`
	PartnerID    string        `bson:"partnerId" json:"partnerId"`
	CustomerID   string        `bson:"customerId" json:"customerId"`
	CustomerName string        `bson:"customerName" json:"customerName"`
	Status       BookingStatus `bson:"status" json:"status"`
	Slot         Slot          `bson:"slot" json:"slot"`
	Service      BookedService `bson:"service" json:"service"`
	Vehicle      Vehicle       `bson:"vehicle" json:"vehicle"`
	Pricing      Pricing       `bson:"pricing" json:"pricing"`
	CancelReason string        `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
