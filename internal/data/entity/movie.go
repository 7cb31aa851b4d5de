package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Price       float64   `db:"price"`
	ReleaseDate time.Time `db:"release_date"`
}
