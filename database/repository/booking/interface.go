// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"washhub/database"
	"washhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the console's contract with the booking store.
// Bookings are created by the customer-facing intake; this console reads
// them and mutates status, reason and slot only.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByPartnerAndDateRange(ctx context.Context, partnerID, fromDate, toDate string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	Cancel(ctx context.Context, id, reason string) error
	Reschedule(ctx context.Context, id string, newSlot models.Slot) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("washhub")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
