package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"theater-booking/internal/catalog"
	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/mirror"
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/database"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScreeningMirror is the file-backed copy of the screening table.
// ExportFrom invokes the reader under the mirror's writer lock so the
// snapshot and the file rewrite cannot interleave with another export.
type ScreeningMirror interface {
	ExportFrom(read func() ([]entity.Screening, error)) error
	Read() ([]entity.Screening, error)
}

// BookingMirror is the append-only booking audit file.
type BookingMirror interface {
	Append(row mirror.BookingRow) error
	Read() ([]mirror.BookingRow, error)
}

// SyncService drives the boot sequence: rebuild the schema, seed the
// catalog, restore the mirrored schedule and bookings, then top the
// schedule up to the rolling window.
type SyncService interface {
	Bootstrap(ctx context.Context) error
}

type syncService struct {
	db         database.PgxIface
	repo       *repository.Repository
	schedule   ScheduleService
	screenings ScreeningMirror
	bookings   BookingMirror
	dataDir    string
	windowDays int
	log        *zap.Logger
}

func NewSyncService(
	db database.PgxIface,
	repo *repository.Repository,
	schedule ScheduleService,
	screenings ScreeningMirror,
	bookings BookingMirror,
	config *utils.Config,
	log *zap.Logger,
) SyncService {
	return &syncService{
		db:         db,
		repo:       repo,
		schedule:   schedule,
		screenings: screenings,
		bookings:   bookings,
		dataDir:    config.Catalog.Dir,
		windowDays: config.Schedule.WindowDays,
		log:        log.With(zap.String("service", "sync")),
	}
}

func (s *syncService) Bootstrap(ctx context.Context) error {
	if err := repository.InitSchema(ctx, s.db); err != nil {
		return err
	}

	cat, err := catalog.Load(s.dataDir)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if err := s.seedCatalog(ctx, cat); err != nil {
		return err
	}

	restored, err := s.restoreSchedule(ctx)
	if err != nil {
		return err
	}

	created, err := s.schedule.TopUp(ctx, cat, utils.Today(), s.windowDays)
	if err != nil {
		return fmt.Errorf("top up schedule: %w", err)
	}

	if err := s.restoreBookings(ctx); err != nil {
		return err
	}

	s.log.Info("Bootstrap complete",
		zap.Int("theaters", len(cat.Theaters)),
		zap.Int("movies", len(cat.Movies)),
		zap.Int("screenings_restored", restored),
		zap.Int("screenings_created", created),
	)
	return nil
}

// seedCatalog persists the catalog rows, filling in their IDs. IDs are
// derived from the row's natural key so every boot assigns the same ID
// to the same theater, movie or user; mirrored files written by an
// earlier run stay valid against the reseeded tables.
func (s *syncService) seedCatalog(ctx context.Context, cat *catalog.Catalog) error {
	now := time.Now().UTC()

	users := make([]*entity.User, len(cat.Users))
	for i, u := range cat.Users {
		users[i] = &entity.User{
			ID:           catalogID("user", u.Email),
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			CreatedAt:    now,
		}
	}
	if err := s.repo.User.CreateBatch(ctx, users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	movies := make([]*entity.Movie, len(cat.Movies))
	for i := range cat.Movies {
		cat.Movies[i].ID = catalogID("movie", cat.Movies[i].Title)
		movies[i] = &entity.Movie{
			ID:          cat.Movies[i].ID,
			Title:       cat.Movies[i].Title,
			Price:       cat.Movies[i].Price,
			ReleaseDate: cat.Movies[i].ReleaseDate,
		}
	}
	if err := s.repo.Movie.CreateBatch(ctx, movies); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	theaters := make([]*entity.Theater, len(cat.Theaters))
	for i := range cat.Theaters {
		cat.Theaters[i].ID = catalogID("theater", cat.Theaters[i].Name)
		theaters[i] = &entity.Theater{
			ID:              cat.Theaters[i].ID,
			Name:            cat.Theaters[i].Name,
			NumberOfSeats:   cat.Theaters[i].NumberOfSeats,
			AvailableMovies: joinTitles(cat.Theaters[i].MovieTitles),
		}
	}
	if err := s.repo.Theater.CreateBatch(ctx, theaters); err != nil {
		return fmt.Errorf("seed theaters: %w", err)
	}

	return nil
}

func catalogID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name))
}

func joinTitles(titles []string) string {
	return strings.Join(titles, ", ")
}

// restoreSchedule loads the mirrored screenings back into the database.
// A missing mirror file means a first boot and restores nothing.
func (s *syncService) restoreSchedule(ctx context.Context) (int, error) {
	rows, err := s.screenings.Read()
	if err != nil {
		return 0, fmt.Errorf("read screening mirror: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	screenings := make([]*entity.Screening, len(rows))
	for i := range rows {
		screenings[i] = &rows[i]
	}
	if err := s.repo.Screening.CreateBatch(ctx, screenings); err != nil {
		return 0, fmt.Errorf("restore mirrored screenings: %w", err)
	}

	return len(rows), nil
}

// restoreBookings replays the booking audit file. Rows pointing at
// screenings no longer on the schedule are skipped, matching the
// append-only file outliving the rolling window.
func (s *syncService) restoreBookings(ctx context.Context) error {
	rows, err := s.bookings.Read()
	if err != nil {
		return fmt.Errorf("read booking mirror: %w", err)
	}

	skipped := 0
	for _, row := range rows {
		screening, err := s.repo.Screening.FindByID(ctx, row.ScreeningID)
		if err != nil {
			return err
		}
		if screening == nil {
			skipped++
			continue
		}

		booking := &entity.Booking{
			ID:              row.TransactionID,
			NumberOfTickets: row.NumberOfTickets,
			UserID:          row.UserID,
			ScreeningID:     row.ScreeningID,
			CreatedAt:       row.Timestamp,
		}
		if err := s.repo.Booking.Create(ctx, booking); err != nil {
			return fmt.Errorf("restore booking %s: %w", row.TransactionID.String(), err)
		}
	}

	if skipped > 0 {
		s.log.Info("Skipped bookings for expired screenings", zap.Int("count", skipped))
	}
	return nil
}
