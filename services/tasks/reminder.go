package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"washhub/models"
)

const TypeBookingReminder = "booking:reminder"

// BookingReminderPayload is what the reminder worker receives when a
// booking's slot approaches.
type BookingReminderPayload struct {
	BookingID  string      `json:"bookingId"`
	PartnerID  string      `json:"partnerId"`
	CustomerID string      `json:"customerId"`
	Slot       models.Slot `json:"slot"`
}

// NewBookingReminderTask builds the reminder task for a booking, scheduled
// to fire at fireAt. Processing belongs to the messaging system's worker.
func NewBookingReminderTask(payload BookingReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
