package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - Reserve seats on a screening
	r.Post("/api/bookings", bookingHandler.Reserve)

	// GET /api/users/{id}/bookings - Booking history for one customer
	r.Get("/api/users/{id}/bookings", bookingHandler.GetHistory)
}
