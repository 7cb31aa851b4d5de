package usecase

import (
	"time"

	"theater-booking/internal/catalog"
	"theater-booking/internal/data/entity"

	"github.com/google/uuid"
)

// ScreeningDraft is a computed-but-not-persisted screening. IDs are
// assigned when drafts are stored, not here.
type ScreeningDraft struct {
	Date           time.Time
	ShowTime       string
	AvailableSeats int
	TheaterID      uuid.UUID
	MovieID        uuid.UUID
}

// GenerateDrafts computes the screenings that must exist for every day
// in [start, start+days) not already covered by existing. It is pure:
// callers persist the drafts and refresh the mirror.
//
// Enumeration order is fixed — date ascending, then theaters in catalog
// order, then each theater's movie titles in listed order, then that
// movie's show times in listed order — so repeated runs over the same
// catalog produce identical output. Days whose DateLayout key is in
// existing are skipped entirely; that guard is what keeps restarts from
// scheduling a date twice. Titles a theater lists but the movie catalog
// does not know are skipped silently: there are no show times to
// schedule, and the catalog files are maintained by hand.
func GenerateDrafts(start time.Time, days int, existing map[string]bool, cat *catalog.Catalog) []ScreeningDraft {
	var drafts []ScreeningDraft

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		if existing[date.Format(entity.DateLayout)] {
			continue
		}

		for _, theater := range cat.Theaters {
			for _, title := range theater.MovieTitles {
				movie, ok := cat.MovieByTitle(title)
				if !ok {
					continue
				}

				for _, showTime := range movie.ShowTimes {
					drafts = append(drafts, ScreeningDraft{
						Date:           date,
						ShowTime:       normalizeShowTime(showTime),
						AvailableSeats: theater.NumberOfSeats,
						TheaterID:      theater.ID,
						MovieID:        movie.ID,
					})
				}
			}
		}
	}

	return drafts
}

// normalizeShowTime widens a catalog HH:MM value to the HH:MM:SS form
// stored on screenings. Values the catalog loader validated always
// parse; anything else is passed through untouched.
func normalizeShowTime(showTime string) string {
	t, err := time.Parse("15:04", showTime)
	if err != nil {
		return showTime
	}
	return t.Format(entity.ShowTimeLayout)
}
