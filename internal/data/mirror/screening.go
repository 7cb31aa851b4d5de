// Package mirror maintains the flat-file projections of the relational
// store: screening.csv, rewritten wholesale from the current screening
// rows, and booking.csv, an append-only audit log. The files are
// exports for outside consumption; the database remains the source of
// truth and mirror failures never roll back a committed write.
package mirror

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"theater-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// File names of the mirror projections inside the data directory.
const (
	ScreeningFile = "screening.csv"
	BookingFile   = "booking.csv"
)

var screeningHeader = []string{"id", "date", "time", "available_seats", "theater_id", "movie_id"}

// ScreeningStore owns screening.csv. Every export rewrites the whole
// file; the mutex serializes concurrent rewrites process-wide so that
// reservations against different screenings cannot clobber each other's
// snapshot.
type ScreeningStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewScreeningStore(path string, log *zap.Logger) *ScreeningStore {
	return &ScreeningStore{
		path: path,
		log:  log.With(zap.String("mirror", "screening")),
	}
}

// ExportFrom replaces screening.csv with one row per screening the
// reader returns. The reader runs inside the store's writer lock, so
// snapshot and rewrite form one unit: a rewrite that lands later can
// never carry an earlier snapshot. The rows are written to a temp file
// in the same directory and swapped in with a rename, so readers never
// observe a partial file.
func (s *ScreeningStore) ExportFrom(read func() ([]entity.Screening, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	screenings, err := read()
	if err != nil {
		return fmt.Errorf("snapshot screenings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "screening-*.csv")
	if err != nil {
		return fmt.Errorf("create temp screening file: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(screeningHeader); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write screening header: %w", err)
	}

	for _, sc := range screenings {
		record := []string{
			sc.ID.String(),
			sc.Date.Format(entity.DateLayout),
			sc.ShowTime,
			strconv.Itoa(sc.AvailableSeats),
			sc.TheaterID.String(),
			sc.MovieID.String(),
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("write screening row %s: %w", sc.ID.String(), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush screening file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp screening file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("swap screening file: %w", err)
	}

	s.log.Debug("Screening mirror exported", zap.Int("rows", len(screenings)))
	return nil
}

// Read loads the mirrored screenings. A missing or empty file yields no
// rows and no error: a fresh deployment simply has nothing scheduled.
func (s *ScreeningStore) Read() ([]entity.Screening, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open screening mirror: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read screening mirror: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	screenings := make([]entity.Screening, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(screeningHeader) {
			return nil, fmt.Errorf("screening mirror row %d: expected %d fields, got %d", i+1, len(screeningHeader), len(record))
		}

		id, err := uuid.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("screening mirror row %d: invalid id %q: %w", i+1, record[0], err)
		}

		date, err := time.Parse(entity.DateLayout, record[1])
		if err != nil {
			return nil, fmt.Errorf("screening mirror row %d: invalid date %q: %w", i+1, record[1], err)
		}

		if _, err := time.Parse(entity.ShowTimeLayout, record[2]); err != nil {
			return nil, fmt.Errorf("screening mirror row %d: invalid time %q: %w", i+1, record[2], err)
		}

		seats, err := strconv.Atoi(record[3])
		if err != nil || seats < 0 {
			return nil, fmt.Errorf("screening mirror row %d: invalid seat count %q", i+1, record[3])
		}

		theaterID, err := uuid.Parse(record[4])
		if err != nil {
			return nil, fmt.Errorf("screening mirror row %d: invalid theater id %q: %w", i+1, record[4], err)
		}

		movieID, err := uuid.Parse(record[5])
		if err != nil {
			return nil, fmt.Errorf("screening mirror row %d: invalid movie id %q: %w", i+1, record[5], err)
		}

		screenings = append(screenings, entity.Screening{
			ID:             id,
			Date:           date,
			ShowTime:       record[2],
			AvailableSeats: seats,
			TheaterID:      theaterID,
			MovieID:        movieID,
		})
	}

	return screenings, nil
}
