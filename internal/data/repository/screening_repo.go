package repository

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ScreeningDetail joins a screening with its theater and movie for the
// browse and booking views.
type ScreeningDetail struct {
	Screening   entity.Screening
	TheaterName string
	MovieTitle  string
	Price       float64
}

type ScreeningRepository interface {
	CreateBatch(ctx context.Context, screenings []*entity.Screening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindAll(ctx context.Context) ([]entity.Screening, error)
	Dates(ctx context.Context, from time.Time) ([]time.Time, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*ScreeningDetail, error)
	FindDetailByDate(ctx context.Context, date time.Time) ([]ScreeningDetail, error)

	// ReserveSeats decrements available_seats by tickets as one
	// conditional statement. ok reports whether the decrement was
	// applied; when it is false the screening either does not exist or
	// holds fewer seats than requested, and nothing was changed.
	ReserveSeats(ctx context.Context, id uuid.UUID, tickets int) (remaining int, ok bool, err error)

	// ReleaseSeats returns tickets to a screening, undoing a reservation
	// whose booking could not be recorded.
	ReleaseSeats(ctx context.Context, id uuid.UUID, tickets int) error
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) CreateBatch(ctx context.Context, screenings []*entity.Screening) error {
	if len(screenings) == 0 {
		return nil
	}

	query := `INSERT INTO screenings (id, show_date, show_time, available_seats, theater_id, movie_id) VALUES `
	args := make([]any, 0, len(screenings)*6)
	for i, s := range screenings {
		if i > 0 {
			query += ","
		}
		base := i * 6
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, s.ID, s.Date, s.ShowTime, s.AvailableSeats, s.TheaterID, s.MovieID)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to insert screenings",
			zap.Error(err),
			zap.Int("count", len(screenings)),
		)
		return fmt.Errorf("insert %d screenings: %w", len(screenings), err)
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT id, show_date, show_time, available_seats, theater_id, movie_id
		FROM screenings
		WHERE id = $1
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.Date,
		&screening.ShowTime,
		&screening.AvailableSeats,
		&screening.TheaterID,
		&screening.MovieID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindAll(ctx context.Context) ([]entity.Screening, error) {
	query := `
		SELECT id, show_date, show_time, available_seats, theater_id, movie_id
		FROM screenings
		ORDER BY show_date, theater_id, movie_id, show_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list screenings", zap.Error(err))
		return nil, fmt.Errorf("list screenings: %w", err)
	}
	defer rows.Close()

	var screenings []entity.Screening
	for rows.Next() {
		var screening entity.Screening
		err := rows.Scan(
			&screening.ID,
			&screening.Date,
			&screening.ShowTime,
			&screening.AvailableSeats,
			&screening.TheaterID,
			&screening.MovieID,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, screening)
	}

	return screenings, nil
}

func (r *screeningRepository) Dates(ctx context.Context, from time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT show_date
		FROM screenings
		WHERE show_date >= $1
		ORDER BY show_date
	`

	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		r.log.Error("Failed to list screening dates", zap.Error(err))
		return nil, fmt.Errorf("list screening dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			r.log.Error("Failed to scan screening date", zap.Error(err))
			return nil, fmt.Errorf("scan screening date: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

const screeningDetailQuery = `
	SELECT s.id, s.show_date, s.show_time, s.available_seats, s.theater_id, s.movie_id,
	       t.name, m.title, m.price
	FROM screenings s
	JOIN theaters t ON t.id = s.theater_id
	JOIN movies m ON m.id = s.movie_id
`

func (r *screeningRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*ScreeningDetail, error) {
	query := screeningDetailQuery + ` WHERE s.id = $1`

	var d ScreeningDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.Screening.ID,
		&d.Screening.Date,
		&d.Screening.ShowTime,
		&d.Screening.AvailableSeats,
		&d.Screening.TheaterID,
		&d.Screening.MovieID,
		&d.TheaterName,
		&d.MovieTitle,
		&d.Price,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening detail",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening detail %s: %w", id.String(), err)
	}

	return &d, nil
}

func (r *screeningRepository) FindDetailByDate(ctx context.Context, date time.Time) ([]ScreeningDetail, error) {
	query := screeningDetailQuery + ` WHERE s.show_date = $1 ORDER BY t.name, m.title, s.show_time`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to list screenings by date",
			zap.Error(err),
			zap.String("date", date.Format(entity.DateLayout)),
		)
		return nil, fmt.Errorf("list screenings for %s: %w", date.Format(entity.DateLayout), err)
	}
	defer rows.Close()

	var details []ScreeningDetail
	for rows.Next() {
		var d ScreeningDetail
		err := rows.Scan(
			&d.Screening.ID,
			&d.Screening.Date,
			&d.Screening.ShowTime,
			&d.Screening.AvailableSeats,
			&d.Screening.TheaterID,
			&d.Screening.MovieID,
			&d.TheaterName,
			&d.MovieTitle,
			&d.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan screening detail row", zap.Error(err))
			return nil, fmt.Errorf("scan screening detail row: %w", err)
		}
		details = append(details, d)
	}

	return details, nil
}

func (r *screeningRepository) ReserveSeats(ctx context.Context, id uuid.UUID, tickets int) (int, bool, error) {
	// Check and decrement in one statement so concurrent reservations
	// cannot both pass the availability check against a stale count.
	query := `
		UPDATE screenings
		SET available_seats = available_seats - $2
		WHERE id = $1 AND available_seats >= $2
		RETURNING available_seats
	`

	var remaining int
	err := r.db.QueryRow(ctx, query, id, tickets).Scan(&remaining)

	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.String("screening_id", id.String()),
			zap.Int("tickets", tickets),
		)
		return 0, false, fmt.Errorf("reserve %d seats on screening %s: %w", tickets, id.String(), err)
	}

	return remaining, true, nil
}

func (r *screeningRepository) ReleaseSeats(ctx context.Context, id uuid.UUID, tickets int) error {
	query := `
		UPDATE screenings
		SET available_seats = available_seats + $2
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, id, tickets); err != nil {
		r.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("screening_id", id.String()),
			zap.Int("tickets", tickets),
		)
		return fmt.Errorf("release %d seats on screening %s: %w", tickets, id.String(), err)
	}

	return nil
}
