package usecase_test

import (
	"context"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/mirror"
	"theater-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateBatch(ctx context.Context, users []*entity.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockTheaterRepository struct {
	mock.Mock
}

func (m *MockTheaterRepository) Create(ctx context.Context, theater *entity.Theater) error {
	args := m.Called(ctx, theater)
	return args.Error(0)
}

func (m *MockTheaterRepository) CreateBatch(ctx context.Context, theaters []*entity.Theater) error {
	args := m.Called(ctx, theaters)
	return args.Error(0)
}

func (m *MockTheaterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Theater), args.Error(1)
}

func (m *MockTheaterRepository) FindAll(ctx context.Context) ([]*entity.Theater, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Theater), args.Error(1)
}

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) CreateBatch(ctx context.Context, movies []*entity.Movie) error {
	args := m.Called(ctx, movies)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

type MockScreeningRepository struct {
	mock.Mock
}

func (m *MockScreeningRepository) CreateBatch(ctx context.Context, screenings []*entity.Screening) error {
	args := m.Called(ctx, screenings)
	return args.Error(0)
}

func (m *MockScreeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Screening), args.Error(1)
}

func (m *MockScreeningRepository) FindAll(ctx context.Context) ([]entity.Screening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Screening), args.Error(1)
}

func (m *MockScreeningRepository) Dates(ctx context.Context, from time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockScreeningRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*repository.ScreeningDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ScreeningDetail), args.Error(1)
}

func (m *MockScreeningRepository) FindDetailByDate(ctx context.Context, date time.Time) ([]repository.ScreeningDetail, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ScreeningDetail), args.Error(1)
}

func (m *MockScreeningRepository) ReserveSeats(ctx context.Context, id uuid.UUID, tickets int) (int, bool, error) {
	args := m.Called(ctx, id, tickets)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockScreeningRepository) ReleaseSeats(ctx context.Context, id uuid.UUID, tickets int) error {
	args := m.Called(ctx, id, tickets)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) CreateBatch(ctx context.Context, bookings []*entity.Booking) error {
	args := m.Called(ctx, bookings)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]repository.BookingDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetail), args.Error(1)
}

type MockScreeningMirror struct {
	mock.Mock
}

func (m *MockScreeningMirror) ExportFrom(read func() ([]entity.Screening, error)) error {
	args := m.Called(read)
	return args.Error(0)
}

func (m *MockScreeningMirror) Read() ([]entity.Screening, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Screening), args.Error(1)
}

type MockBookingMirror struct {
	mock.Mock
}

func (m *MockBookingMirror) Append(row mirror.BookingRow) error {
	args := m.Called(row)
	return args.Error(0)
}

func (m *MockBookingMirror) Read() ([]mirror.BookingRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mirror.BookingRow), args.Error(1)
}
