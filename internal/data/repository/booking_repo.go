package repository

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingDetail joins a booking with the screening it was made against
// and that screening's theater and movie, for the history view.
type BookingDetail struct {
	Booking       entity.Booking
	ScreeningDate time.Time
	ScreeningTime string
	TheaterName   string
	MovieTitle    string
	Price         float64
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	CreateBatch(ctx context.Context, bookings []*entity.Booking) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]BookingDetail, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, number_of_tickets, user_id, screening_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.NumberOfTickets,
		booking.UserID,
		booking.ScreeningID,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) CreateBatch(ctx context.Context, bookings []*entity.Booking) error {
	for _, booking := range bookings {
		if err := r.Create(ctx, booking); err != nil {
			return err
		}
	}
	return nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]BookingDetail, error) {
	query := `
		SELECT b.id, b.number_of_tickets, b.user_id, b.screening_id, b.created_at,
		       s.show_date, s.show_time, t.name, m.title, m.price
		FROM bookings b
		JOIN screenings s ON s.id = b.screening_id
		JOIN theaters t ON t.id = s.theater_id
		JOIN movies m ON m.id = s.movie_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var details []BookingDetail
	for rows.Next() {
		var d BookingDetail
		err := rows.Scan(
			&d.Booking.ID,
			&d.Booking.NumberOfTickets,
			&d.Booking.UserID,
			&d.Booking.ScreeningID,
			&d.Booking.CreatedAt,
			&d.ScreeningDate,
			&d.ScreeningTime,
			&d.TheaterName,
			&d.MovieTitle,
			&d.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		details = append(details, d)
	}

	return details, nil
}
