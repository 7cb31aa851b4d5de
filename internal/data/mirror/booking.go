package mirror

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var bookingHeader = []string{
	"transaction_id", "user_id", "customer_name", "number_of_tickets",
	"date", "time", "movie_id", "screening_id", "timestamp",
}

const bookingTimestampLayout = "2006-01-02 15:04:05"

// BookingRow is one line of the booking audit log. It denormalizes the
// screening date/time and the customer display name so the file is
// readable on its own.
type BookingRow struct {
	TransactionID   uuid.UUID
	UserID          uuid.UUID
	CustomerName    string
	NumberOfTickets int
	ScreeningDate   string
	ScreeningTime   string
	MovieID         uuid.UUID
	ScreeningID     uuid.UUID
	Timestamp       time.Time
}

// BookingStore owns booking.csv. The log is append-only; rows are never
// rewritten or removed.
type BookingStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewBookingStore(path string, log *zap.Logger) *BookingStore {
	return &BookingStore{
		path: path,
		log:  log.With(zap.String("mirror", "booking")),
	}
}

// Append writes one booking row, creating the file with its header on
// first use.
func (s *BookingStore) Append(row BookingRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open booking mirror: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat booking mirror: %w", err)
	}

	writer := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := writer.Write(bookingHeader); err != nil {
			return fmt.Errorf("write booking header: %w", err)
		}
	}

	record := []string{
		row.TransactionID.String(),
		row.UserID.String(),
		row.CustomerName,
		strconv.Itoa(row.NumberOfTickets),
		row.ScreeningDate,
		row.ScreeningTime,
		row.MovieID.String(),
		row.ScreeningID.String(),
		row.Timestamp.Format(bookingTimestampLayout),
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("write booking row %s: %w", row.TransactionID.String(), err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush booking mirror: %w", err)
	}

	s.log.Debug("Booking appended to mirror",
		zap.String("transaction_id", row.TransactionID.String()),
		zap.String("screening_id", row.ScreeningID.String()),
	)
	return nil
}

// Read loads the mirrored bookings. A missing or empty file yields no
// rows and no error.
func (s *BookingStore) Read() ([]BookingRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open booking mirror: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read booking mirror: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]BookingRow, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(bookingHeader) {
			return nil, fmt.Errorf("booking mirror row %d: expected %d fields, got %d", i+1, len(bookingHeader), len(record))
		}

		transactionID, err := uuid.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("booking mirror row %d: invalid transaction id %q: %w", i+1, record[0], err)
		}

		userID, err := uuid.Parse(record[1])
		if err != nil {
			return nil, fmt.Errorf("booking mirror row %d: invalid user id %q: %w", i+1, record[1], err)
		}

		tickets, err := strconv.Atoi(record[3])
		if err != nil || tickets <= 0 {
			return nil, fmt.Errorf("booking mirror row %d: invalid ticket count %q", i+1, record[3])
		}

		movieID, err := uuid.Parse(record[6])
		if err != nil {
			return nil, fmt.Errorf("booking mirror row %d: invalid movie id %q: %w", i+1, record[6], err)
		}

		screeningID, err := uuid.Parse(record[7])
		if err != nil {
			return nil, fmt.Errorf("booking mirror row %d: invalid screening id %q: %w", i+1, record[7], err)
		}

		timestamp, err := time.Parse(bookingTimestampLayout, record[8])
		if err != nil {
			return nil, fmt.Errorf("booking mirror row %d: invalid timestamp %q: %w", i+1, record[8], err)
		}

		rows = append(rows, BookingRow{
			TransactionID:   transactionID,
			UserID:          userID,
			CustomerName:    record[2],
			NumberOfTickets: tickets,
			ScreeningDate:   record[4],
			ScreeningTime:   record[5],
			MovieID:         movieID,
			ScreeningID:     screeningID,
			Timestamp:       timestamp,
		})
	}

	return rows, nil
}
