package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one ticket purchase against a single screening. Bookings are
// append-only: created once by the reservation flow, never updated or
// deleted.
type Booking struct {
	ID              uuid.UUID `db:"id"`
	NumberOfTickets int       `db:"number_of_tickets"`
	UserID          uuid.UUID `db:"user_id"`
	ScreeningID     uuid.UUID `db:"screening_id"`
	CreatedAt       time.Time `db:"created_at"`
}
