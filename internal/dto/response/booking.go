package response

import (
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
)

// ReservationResponse is returned by a successful reservation: the
// created booking plus the screening's updated seat count.
type ReservationResponse struct {
	BookingID       string    `json:"booking_id"`
	ScreeningID     string    `json:"screening_id"`
	UserID          string    `json:"user_id"`
	NumberOfTickets int       `json:"number_of_tickets"`
	AvailableSeats  int       `json:"available_seats"`
	MovieTitle      string    `json:"movie_title"`
	TheaterName     string    `json:"theater_name"`
	CreatedAt       time.Time `json:"created_at"`
}

func ReservationToResponse(booking *entity.Booking, detail *repository.ScreeningDetail, remaining int) ReservationResponse {
	return ReservationResponse{
		BookingID:       booking.ID.String(),
		ScreeningID:     booking.ScreeningID.String(),
		UserID:          booking.UserID.String(),
		NumberOfTickets: booking.NumberOfTickets,
		AvailableSeats:  remaining,
		MovieTitle:      detail.MovieTitle,
		TheaterName:     detail.TheaterName,
		CreatedAt:       booking.CreatedAt,
	}
}

type BookingHistoryResponse struct {
	BookingID       string    `json:"booking_id"`
	NumberOfTickets int       `json:"number_of_tickets"`
	ScreeningID     string    `json:"screening_id"`
	ScreeningDate   string    `json:"screening_date"`
	ScreeningTime   string    `json:"screening_time"`
	TheaterName     string    `json:"theater_name"`
	MovieTitle      string    `json:"movie_title"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"created_at"`
}

func BookingDetailToResponse(d *repository.BookingDetail) BookingHistoryResponse {
	return BookingHistoryResponse{
		BookingID:       d.Booking.ID.String(),
		NumberOfTickets: d.Booking.NumberOfTickets,
		ScreeningID:     d.Booking.ScreeningID.String(),
		ScreeningDate:   d.ScreeningDate.Format(entity.DateLayout),
		ScreeningTime:   d.ScreeningTime,
		TheaterName:     d.TheaterName,
		MovieTitle:      d.MovieTitle,
		Price:           d.Price,
		CreatedAt:       d.Booking.CreatedAt,
	}
}
