package adaptor

import (
	"errors"
	"net/http"

	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetDates handles GET /api/screenings/dates
func (h *ScheduleHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.ListDates(r.Context())
	if err != nil {
		h.log.Error("Failed to list screening dates", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Screening dates retrieved successfully", dates)
}

// GetByDate handles GET /api/screenings?date=YYYY-MM-DD
func (h *ScheduleHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Query parameter date is required", nil)
		return
	}

	screenings, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			utils.ResponseBadRequest(w, "Date must be formatted as YYYY-MM-DD", nil)
			return
		}
		h.log.Error("Failed to list screenings",
			zap.Error(err),
			zap.String("date", date),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}
