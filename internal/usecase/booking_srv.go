package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/mirror"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Reserve(ctx context.Context, req *request.ReserveRequest) (*response.ReservationResponse, error)
	History(ctx context.Context, userID string) ([]response.BookingHistoryResponse, error)
}

type bookingService struct {
	repo       *repository.Repository
	screenings ScreeningMirror
	bookings   BookingMirror
	log        *zap.Logger
}

func NewBookingService(repo *repository.Repository, screenings ScreeningMirror, bookings BookingMirror, log *zap.Logger) BookingService {
	return &bookingService{
		repo:       repo,
		screenings: screenings,
		bookings:   bookings,
		log:        log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Reserve(ctx context.Context, req *request.ReserveRequest) (*response.ReservationResponse, error) {
	if req.NumberOfTickets <= 0 {
		return nil, fmt.Errorf("%w: requested %d", ErrInvalidTicketCount, req.NumberOfTickets)
	}

	screeningID, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		return nil, fmt.Errorf("%w: screening %q", ErrInvalidID, req.ScreeningID)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q", ErrInvalidID, req.UserID)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detail, err := s.repo.Screening.FindDetailByID(ctx, screeningID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrScreeningNotFound
	}

	remaining, ok, err := s.repo.Screening.ReserveSeats(ctx, screeningID, req.NumberOfTickets)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The decrement was refused: either the screening vanished or
		// too few seats remain. Re-read to tell the two apart.
		current, err := s.repo.Screening.FindByID(ctx, screeningID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrScreeningNotFound
		}
		return nil, &InsufficientSeatsError{Available: current.AvailableSeats}
	}

	booking := &entity.Booking{
		ID:              uuid.New(),
		NumberOfTickets: req.NumberOfTickets,
		UserID:          userID,
		ScreeningID:     screeningID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// The seats are already held; give them back before failing.
		if releaseErr := s.repo.Screening.ReleaseSeats(ctx, screeningID, req.NumberOfTickets); releaseErr != nil {
			s.log.Error("Failed to release seats after booking failure",
				zap.Error(releaseErr),
				zap.String("screening_id", screeningID.String()),
				zap.Int("tickets", req.NumberOfTickets),
			)
		}
		return nil, err
	}

	s.log.Info("Reservation confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("screening_id", screeningID.String()),
		zap.Int("tickets", req.NumberOfTickets),
		zap.Int("seats_left", remaining),
	)

	// Mirror updates run after the database commit. A file failure
	// leaves the reservation valid, so log and carry on.
	s.refreshMirrors(ctx, booking, user, detail)

	resp := response.ReservationToResponse(booking, detail, remaining)
	return &resp, nil
}

func (s *bookingService) refreshMirrors(ctx context.Context, booking *entity.Booking, user *entity.User, detail *repository.ScreeningDetail) {
	// The snapshot is taken by the mirror itself, under its writer
	// lock, so a slower reservation cannot overwrite the file with
	// seat counts a faster one already advanced past.
	err := s.screenings.ExportFrom(func() ([]entity.Screening, error) {
		return s.repo.Screening.FindAll(ctx)
	})
	if err != nil {
		s.log.Warn("Failed to refresh screening mirror", zap.Error(err))
	}

	row := mirror.BookingRow{
		TransactionID:   booking.ID,
		UserID:          user.ID,
		CustomerName:    user.FullName(),
		NumberOfTickets: booking.NumberOfTickets,
		ScreeningDate:   detail.Screening.Date.Format(entity.DateLayout),
		ScreeningTime:   detail.Screening.ShowTime,
		MovieID:         detail.Screening.MovieID,
		ScreeningID:     booking.ScreeningID,
		Timestamp:       booking.CreatedAt,
	}
	if err := s.bookings.Append(row); err != nil {
		s.log.Warn("Failed to append booking mirror",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

func (s *bookingService) History(ctx context.Context, userID string) ([]response.BookingHistoryResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q", ErrInvalidID, userID)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	details, err := s.repo.Booking.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	history := make([]response.BookingHistoryResponse, len(details))
	for i := range details {
		history[i] = response.BookingDetailToResponse(&details[i])
	}

	return history, nil
}
