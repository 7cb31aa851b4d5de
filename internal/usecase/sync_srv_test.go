package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/mirror"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDB satisfies database.PgxIface for code paths that only Exec.
type fakeDB struct {
	execs []string
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (f *fakeDB) Ping(ctx context.Context) error            { return nil }
func (f *fakeDB) Close()                                    {}

func writeCatalogFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"movie.csv": "title,price,release_date,show_times\n" +
			"Heat,12.50,1995-12-15,\"18:00, 21:00\"\n",
		"theater.csv": "theater_name,number_of_seats,available_movies\n" +
			"Grand,100,Heat\n",
		"user.csv": "email,password,first_name,last_name\n" +
			"jane@example.com,$2a$10$abcdefghijklmnopqrstuv,Jane,Doe\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

type syncFixture struct {
	db            *fakeDB
	userRepo      *MockUserRepository
	theaterRepo   *MockTheaterRepository
	movieRepo     *MockMovieRepository
	screeningRepo *MockScreeningRepository
	bookingRepo   *MockBookingRepository
	screenings    *MockScreeningMirror
	bookings      *MockBookingMirror
	service       usecase.SyncService
}

func newSyncFixture(t *testing.T) *syncFixture {
	f := &syncFixture{
		db:            &fakeDB{},
		userRepo:      new(MockUserRepository),
		theaterRepo:   new(MockTheaterRepository),
		movieRepo:     new(MockMovieRepository),
		screeningRepo: new(MockScreeningRepository),
		bookingRepo:   new(MockBookingRepository),
		screenings:    new(MockScreeningMirror),
		bookings:      new(MockBookingMirror),
	}

	repo := &repository.Repository{
		User:      f.userRepo,
		Theater:   f.theaterRepo,
		Movie:     f.movieRepo,
		Screening: f.screeningRepo,
		Booking:   f.bookingRepo,
	}
	config := &utils.Config{
		Catalog:  utils.CatalogConfig{Dir: writeCatalogFiles(t)},
		Schedule: utils.ScheduleConfig{WindowDays: 7},
	}
	schedule := usecase.NewScheduleService(repo, f.screenings, zap.NewNop())
	f.service = usecase.NewSyncService(f.db, repo, schedule, f.screenings, f.bookings, config, zap.NewNop())
	return f
}

func TestBootstrapFirstBoot(t *testing.T) {
	f := newSyncFixture(t)

	f.userRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	f.movieRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	var theaters []*entity.Theater
	f.theaterRepo.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			theaters = args.Get(1).([]*entity.Theater)
		}).
		Return(nil)

	// Both mirrors are missing on a first boot.
	f.screenings.On("Read").Return(nil, nil)
	f.bookings.On("Read").Return(nil, nil)

	f.screeningRepo.On("Dates", mock.Anything, mock.Anything).Return([]time.Time{}, nil)
	var persisted []*entity.Screening
	f.screeningRepo.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).([]*entity.Screening)
		}).
		Return(nil)
	f.screenings.On("ExportFrom", mock.Anything).Return(nil)

	require.NoError(t, f.service.Bootstrap(context.Background()))

	// Schema statements ran against the database.
	assert.NotEmpty(t, f.db.execs)

	// One theater, one movie, two show times, seven days.
	require.Len(t, persisted, 14)

	require.Len(t, theaters, 1)
	assert.Equal(t, "Heat", theaters[0].AvailableMovies)
	assert.NotEqual(t, uuid.Nil, theaters[0].ID)
}

func TestBootstrapCatalogIDsAreStable(t *testing.T) {
	capture := func() uuid.UUID {
		f := newSyncFixture(t)

		f.userRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
		f.movieRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

		var id uuid.UUID
		f.theaterRepo.On("CreateBatch", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				id = args.Get(1).([]*entity.Theater)[0].ID
			}).
			Return(nil)

		f.screenings.On("Read").Return(nil, nil)
		f.bookings.On("Read").Return(nil, nil)
		f.screeningRepo.On("Dates", mock.Anything, mock.Anything).Return([]time.Time{}, nil)
		f.screeningRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
		f.screenings.On("ExportFrom", mock.Anything).Return(nil)

		require.NoError(t, f.service.Bootstrap(context.Background()))
		return id
	}

	assert.Equal(t, capture(), capture())
}

func TestBootstrapRestoresMirroredState(t *testing.T) {
	f := newSyncFixture(t)

	f.userRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	f.movieRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	f.theaterRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	known := entity.Screening{
		ID:             uuid.New(),
		Date:           day("2026-08-29"),
		ShowTime:       "18:00:00",
		AvailableSeats: 97,
		TheaterID:      uuid.New(),
		MovieID:        uuid.New(),
	}
	f.screenings.On("Read").Return([]entity.Screening{known}, nil)

	replayable := mirror.BookingRow{
		TransactionID:   uuid.New(),
		UserID:          uuid.New(),
		CustomerName:    "Jane Doe",
		NumberOfTickets: 3,
		ScreeningDate:   "2026-08-29",
		ScreeningTime:   "18:00:00",
		MovieID:         known.MovieID,
		ScreeningID:     known.ID,
		Timestamp:       time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
	stale := replayable
	stale.TransactionID = uuid.New()
	stale.ScreeningID = uuid.New()
	f.bookings.On("Read").Return([]mirror.BookingRow{replayable, stale}, nil)

	var restored []*entity.Screening
	f.screeningRepo.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			restored = append(restored, args.Get(1).([]*entity.Screening)...)
		}).
		Return(nil)
	f.screeningRepo.On("Dates", mock.Anything, mock.Anything).Return([]time.Time{}, nil)
	f.screenings.On("ExportFrom", mock.Anything).Return(nil)
	f.screeningRepo.On("FindByID", mock.Anything, known.ID).Return(&known, nil)
	f.screeningRepo.On("FindByID", mock.Anything, stale.ScreeningID).Return(nil, nil)

	var replayed []*entity.Booking
	f.bookingRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			replayed = append(replayed, args.Get(1).(*entity.Booking))
		}).
		Return(nil)

	require.NoError(t, f.service.Bootstrap(context.Background()))

	// The mirrored screening went back in with its seat count intact.
	require.NotEmpty(t, restored)
	assert.Equal(t, known.ID, restored[0].ID)
	assert.Equal(t, 97, restored[0].AvailableSeats)

	// The booking pointing at a vanished screening was skipped.
	require.Len(t, replayed, 1)
	assert.Equal(t, replayable.TransactionID, replayed[0].ID)
	assert.Equal(t, 3, replayed[0].NumberOfTickets)
}

func TestBootstrapFailsWithoutCatalog(t *testing.T) {
	f := &syncFixture{db: &fakeDB{}}
	repo := &repository.Repository{}
	config := &utils.Config{
		Catalog:  utils.CatalogConfig{Dir: t.TempDir()},
		Schedule: utils.ScheduleConfig{WindowDays: 7},
	}
	schedule := usecase.NewScheduleService(repo, new(MockScreeningMirror), zap.NewNop())
	service := usecase.NewSyncService(f.db, repo, schedule, new(MockScreeningMirror), new(MockBookingMirror), config, zap.NewNop())

	err := service.Bootstrap(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}
