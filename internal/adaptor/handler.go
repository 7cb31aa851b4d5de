package adaptor

import (
	"theater-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User     *UserHandler
	Catalog  *CatalogHandler
	Schedule *ScheduleHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:     NewUserHandler(service.User, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Schedule: NewScheduleHandler(service.Schedule, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}
