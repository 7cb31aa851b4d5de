package entity

import (
	"strings"

	"github.com/google/uuid"
)

type Theater struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	NumberOfSeats int       `db:"number_of_seats"`
	// AvailableMovies stores the comma-separated movie titles this theater
	// screens, exactly as carried in the catalog file.
	AvailableMovies string `db:"available_movies"`
}

// MovieTitles splits AvailableMovies into its ordered titles.
func (t *Theater) MovieTitles() []string {
	if t.AvailableMovies == "" {
		return nil
	}
	parts := strings.Split(t.AvailableMovies, ",")
	titles := make([]string, 0, len(parts))
	for _, p := range parts {
		if title := strings.TrimSpace(p); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}
