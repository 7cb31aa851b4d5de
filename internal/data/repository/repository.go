package repository

import (
	"theater-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Theater   TheaterRepository
	Movie     MovieRepository
	Screening ScreeningRepository
	Booking   BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Theater:   NewTheaterRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Booking:   NewBookingRepository(db, log),
	}
}
