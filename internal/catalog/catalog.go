// Package catalog loads the flat-file theater and movie definitions the
// schedule is generated from. Catalog data is read once at boot and is
// read-only afterwards.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// File names expected inside the catalog data directory.
const (
	MovieFile   = "movie.csv"
	TheaterFile = "theater.csv"
	UserFile    = "user.csv"
)

// Movie is one catalog row of movie.csv. ShowTimes keeps the file's
// ordering; times are HH:MM values with no date component. ID is zero
// until the row is persisted.
type Movie struct {
	ID          uuid.UUID
	Title       string
	Price       float64
	ReleaseDate time.Time
	ShowTimes   []string
}

// Theater is one catalog row of theater.csv. MovieTitles keeps the
// file's ordering and may name movies missing from the movie catalog;
// those are skipped at schedule generation, not rejected here.
type Theater struct {
	ID            uuid.UUID
	Name          string
	NumberOfSeats int
	MovieTitles   []string
}

// User is one seed row of user.csv. Passwords arrive already hashed.
type User struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

// Catalog bundles the loaded definitions in file order.
type Catalog struct {
	Theaters []Theater
	Movies   []Movie
	Users    []User

	movieIndex map[string]int
}

// New assembles a catalog from already-parsed rows and indexes the
// movies by title.
func New(theaters []Theater, movies []Movie, users []User) *Catalog {
	cat := &Catalog{
		Theaters: theaters,
		Movies:   movies,
		Users:    users,
	}
	cat.reindex()
	return cat
}

// MovieByTitle returns the catalog movie with the given title, if any.
func (c *Catalog) MovieByTitle(title string) (*Movie, bool) {
	i, ok := c.movieIndex[title]
	if !ok {
		return nil, false
	}
	return &c.Movies[i], true
}

func (c *Catalog) reindex() {
	c.movieIndex = make(map[string]int, len(c.Movies))
	for i, m := range c.Movies {
		c.movieIndex[m.Title] = i
	}
}
