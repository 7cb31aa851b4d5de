package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/catalog"
	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleService interface {
	// TopUp generates and persists the screenings missing from the
	// rolling window starting at start, then refreshes the screening
	// mirror. It returns the number of screenings created.
	TopUp(ctx context.Context, cat *catalog.Catalog, start time.Time, days int) (int, error)

	ListDates(ctx context.Context) (*response.ScreeningDatesResponse, error)
	ListByDate(ctx context.Context, date string) ([]response.ScreeningResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	mirror ScreeningMirror
	log    *zap.Logger
}

func NewScheduleService(repo *repository.Repository, mirror ScreeningMirror, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo:   repo,
		mirror: mirror,
		log:    log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) TopUp(ctx context.Context, cat *catalog.Catalog, start time.Time, days int) (int, error) {
	dates, err := s.repo.Screening.Dates(ctx, start)
	if err != nil {
		return 0, fmt.Errorf("load scheduled dates: %w", err)
	}

	existing := make(map[string]bool, len(dates))
	for _, d := range dates {
		existing[d.Format(entity.DateLayout)] = true
	}

	drafts := GenerateDrafts(start, days, existing, cat)
	if len(drafts) == 0 {
		s.log.Info("Schedule already covers the window",
			zap.String("start", start.Format(entity.DateLayout)),
			zap.Int("days", days),
		)
		return 0, nil
	}

	screenings := make([]*entity.Screening, len(drafts))
	for i, draft := range drafts {
		screenings[i] = &entity.Screening{
			ID:             draftID(draft),
			Date:           draft.Date,
			ShowTime:       draft.ShowTime,
			AvailableSeats: draft.AvailableSeats,
			TheaterID:      draft.TheaterID,
			MovieID:        draft.MovieID,
		}
	}

	if err := s.repo.Screening.CreateBatch(ctx, screenings); err != nil {
		return 0, fmt.Errorf("persist %d screenings: %w", len(screenings), err)
	}

	err = s.mirror.ExportFrom(func() ([]entity.Screening, error) {
		return s.repo.Screening.FindAll(ctx)
	})
	if err != nil {
		return 0, fmt.Errorf("export screening mirror: %w", err)
	}

	s.log.Info("Schedule topped up",
		zap.String("start", start.Format(entity.DateLayout)),
		zap.Int("days", days),
		zap.Int("created", len(drafts)),
	)

	return len(drafts), nil
}

// draftID derives a stable screening ID from the slot itself, so
// regenerating the same slot on another boot yields the same ID.
func draftID(draft ScreeningDraft) uuid.UUID {
	name := fmt.Sprintf("screening:%s:%s:%s:%s",
		draft.TheaterID.String(),
		draft.MovieID.String(),
		draft.Date.Format(entity.DateLayout),
		draft.ShowTime,
	)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

func (s *scheduleService) ListDates(ctx context.Context) (*response.ScreeningDatesResponse, error) {
	dates, err := s.repo.Screening.Dates(ctx, utils.Today())
	if err != nil {
		s.log.Error("Failed to list screening dates", zap.Error(err))
		return nil, fmt.Errorf("list screening dates: %w", err)
	}

	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = d.Format(entity.DateLayout)
	}

	resp := response.DatesToResponse(keys)
	return &resp, nil
}

func (s *scheduleService) ListByDate(ctx context.Context, date string) ([]response.ScreeningResponse, error) {
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w %q: expected %s", ErrInvalidDate, date, entity.DateLayout)
	}

	details, err := s.repo.Screening.FindDetailByDate(ctx, day)
	if err != nil {
		s.log.Error("Failed to list screenings",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("list screenings for %s: %w", date, err)
	}

	screenings := make([]response.ScreeningResponse, len(details))
	for i := range details {
		screenings[i] = response.ScreeningDetailToResponse(&details[i])
	}

	return screenings, nil
}
