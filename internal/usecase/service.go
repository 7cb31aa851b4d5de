package usecase

import (
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/database"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User     UserService
	Catalog  CatalogService
	Schedule ScheduleService
	Booking  BookingService
	Sync     SyncService
}

func NewService(
	db database.PgxIface,
	repo *repository.Repository,
	screenings ScreeningMirror,
	bookings BookingMirror,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	schedule := NewScheduleService(repo, screenings, log)
	return &Service{
		User:     NewUserService(repo, log),
		Catalog:  NewCatalogService(repo, log),
		Schedule: schedule,
		Booking:  NewBookingService(repo, screenings, bookings, log),
		Sync:     NewSyncService(db, repo, schedule, screenings, bookings, config, log),
	}
}
