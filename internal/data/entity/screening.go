package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is the calendar-date format used in catalog files,
	// mirror files and API parameters.
	DateLayout = "2006-01-02"
	// ShowTimeLayout is the time-of-day format stored on screenings.
	ShowTimeLayout = "15:04:05"
)

// Screening is one showing of a movie in a theater on a calendar date.
// Screenings are created in batches by the schedule top-up and only ever
// mutated by the reservation seat decrement.
type Screening struct {
	ID   uuid.UUID `db:"id"`
	Date time.Time `db:"show_date"`
	// ShowTime is the time of day in ShowTimeLayout form.
	ShowTime       string    `db:"show_time"`
	AvailableSeats int       `db:"available_seats"`
	TheaterID      uuid.UUID `db:"theater_id"`
	MovieID        uuid.UUID `db:"movie_id"`
}

// DateKey returns the screening date in DateLayout form, the key used for
// the generator's already-scheduled set.
func (s *Screening) DateKey() string {
	return s.Date.Format(DateLayout)
}
