package repository

import (
	"context"
	"fmt"

	"theater-booking/pkg/database"
)

// The catalog files are the seed source on every start, so the schema is
// dropped and recreated rather than migrated.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS bookings`,
	`DROP TABLE IF EXISTS screenings`,
	`DROP TABLE IF EXISTS theaters`,
	`DROP TABLE IF EXISTS movies`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
		id uuid PRIMARY KEY,
		email text NOT NULL UNIQUE,
		password text NOT NULL,
		first_name text NOT NULL,
		last_name text NOT NULL,
		created_at timestamptz NOT NULL
	)`,
	`CREATE TABLE theaters (
		id uuid PRIMARY KEY,
		name text NOT NULL,
		number_of_seats integer NOT NULL CHECK (number_of_seats > 0),
		available_movies text NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE movies (
		id uuid PRIMARY KEY,
		title text NOT NULL UNIQUE,
		price double precision NOT NULL,
		release_date date NOT NULL
	)`,
	`CREATE TABLE screenings (
		id uuid PRIMARY KEY,
		show_date date NOT NULL,
		show_time text NOT NULL,
		available_seats integer NOT NULL CHECK (available_seats >= 0),
		theater_id uuid NOT NULL REFERENCES theaters (id),
		movie_id uuid NOT NULL REFERENCES movies (id)
	)`,
	// One screening per theater, movie, date and show time.
	`CREATE UNIQUE INDEX screenings_slot_idx
		ON screenings (theater_id, movie_id, show_date, show_time)`,
	`CREATE INDEX screenings_show_date_idx ON screenings (show_date)`,
	`CREATE TABLE bookings (
		id uuid PRIMARY KEY,
		number_of_tickets integer NOT NULL CHECK (number_of_tickets > 0),
		user_id uuid NOT NULL REFERENCES users (id),
		screening_id uuid NOT NULL REFERENCES screenings (id),
		created_at timestamptz NOT NULL
	)`,
	`CREATE INDEX bookings_user_id_idx ON bookings (user_id)`,
}

// InitSchema resets the database to an empty schema ready for seeding.
func InitSchema(ctx context.Context, db database.PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
