package response

import (
	"theater-booking/internal/data/repository"
)

type ScreeningResponse struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	AvailableSeats int     `json:"available_seats"`
	TheaterID      string  `json:"theater_id"`
	TheaterName    string  `json:"theater_name"`
	MovieID        string  `json:"movie_id"`
	MovieTitle     string  `json:"movie_title"`
	Price          float64 `json:"price"`
}

func ScreeningDetailToResponse(d *repository.ScreeningDetail) ScreeningResponse {
	return ScreeningResponse{
		ID:             d.Screening.ID.String(),
		Date:           d.Screening.DateKey(),
		Time:           d.Screening.ShowTime,
		AvailableSeats: d.Screening.AvailableSeats,
		TheaterID:      d.Screening.TheaterID.String(),
		TheaterName:    d.TheaterName,
		MovieID:        d.Screening.MovieID.String(),
		MovieTitle:     d.MovieTitle,
		Price:          d.Price,
	}
}

type ScreeningDatesResponse struct {
	Dates []string `json:"dates"`
}

func DatesToResponse(dates []string) ScreeningDatesResponse {
	if dates == nil {
		dates = []string{}
	}
	return ScreeningDatesResponse{Dates: dates}
}
