package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Load reads movie.csv, theater.csv and user.csv from dir. Any missing
// file or malformed row is an error; the caller treats catalog load
// failure as fatal at boot.
func Load(dir string) (*Catalog, error) {
	movies, err := loadMovies(filepath.Join(dir, MovieFile))
	if err != nil {
		return nil, fmt.Errorf("load movie catalog: %w", err)
	}

	theaters, err := loadTheaters(filepath.Join(dir, TheaterFile))
	if err != nil {
		return nil, fmt.Errorf("load theater catalog: %w", err)
	}

	users, err := loadUsers(filepath.Join(dir, UserFile))
	if err != nil {
		return nil, fmt.Errorf("load user seed: %w", err)
	}

	return New(theaters, movies, users), nil
}

func loadMovies(path string) ([]Movie, error) {
	rows, err := readRecords(path, []string{"title", "price", "release_date", "show_times"})
	if err != nil {
		return nil, err
	}

	movies := make([]Movie, 0, len(rows))
	for i, row := range rows {
		price, err := strconv.ParseFloat(row["price"], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", i+1, row["price"], err)
		}

		releaseDate, err := time.Parse("2006-01-02", row["release_date"])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid release date %q: %w", i+1, row["release_date"], err)
		}

		showTimes := splitList(row["show_times"])
		for _, st := range showTimes {
			if _, err := time.Parse("15:04", st); err != nil {
				return nil, fmt.Errorf("row %d: invalid show time %q: %w", i+1, st, err)
			}
		}

		movies = append(movies, Movie{
			Title:       row["title"],
			Price:       price,
			ReleaseDate: releaseDate,
			ShowTimes:   showTimes,
		})
	}

	return movies, nil
}

func loadTheaters(path string) ([]Theater, error) {
	rows, err := readRecords(path, []string{"theater_name", "number_of_seats", "available_movies"})
	if err != nil {
		return nil, err
	}

	theaters := make([]Theater, 0, len(rows))
	for i, row := range rows {
		seats, err := strconv.Atoi(row["number_of_seats"])
		if err != nil || seats <= 0 {
			return nil, fmt.Errorf("row %d: invalid seat count %q", i+1, row["number_of_seats"])
		}

		theaters = append(theaters, Theater{
			Name:          row["theater_name"],
			NumberOfSeats: seats,
			MovieTitles:   splitList(row["available_movies"]),
		})
	}

	return theaters, nil
}

func loadUsers(path string) ([]User, error) {
	rows, err := readRecords(path, []string{"email", "password", "first_name", "last_name"})
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, User{
			Email:        row["email"],
			PasswordHash: row["password"],
			FirstName:    row["first_name"],
			LastName:     row["last_name"],
		})
	}

	return users, nil
}

// readRecords reads a headed CSV file into one map per data row. All
// required columns must be present in the header.
func readRecords(path string, required []string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", filepath.Base(path), col)
		}
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(required))
		for _, col := range required {
			row[col] = strings.TrimSpace(record[index[col]])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// splitList splits a comma-separated catalog cell into trimmed values.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
