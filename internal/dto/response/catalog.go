package response

import (
	"theater-booking/internal/data/entity"
)

type TheaterResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	NumberOfSeats   int      `json:"number_of_seats"`
	AvailableMovies []string `json:"available_movies"`
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:              theater.ID.String(),
		Name:            theater.Name,
		NumberOfSeats:   theater.NumberOfSeats,
		AvailableMovies: theater.MovieTitles(),
	}
}

type MovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	ReleaseDate string  `json:"release_date"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Price:       movie.Price,
		ReleaseDate: movie.ReleaseDate.Format(entity.DateLayout),
	}
}
