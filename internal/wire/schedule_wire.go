package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSchedule(r chi.Router, scheduleHandler *adaptor.ScheduleHandler) {
	// GET /api/screenings/dates - Dates that still have screenings
	r.Get("/api/screenings/dates", scheduleHandler.GetDates)

	// GET /api/screenings?date=YYYY-MM-DD - Screenings on one date
	r.Get("/api/screenings", scheduleHandler.GetByDate)
}
