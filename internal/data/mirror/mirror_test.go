package mirror_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/mirror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleScreening(seats int) entity.Screening {
	return entity.Screening{
		ID:             uuid.New(),
		Date:           time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		ShowTime:       "18:00:00",
		AvailableSeats: seats,
		TheaterID:      uuid.New(),
		MovieID:        uuid.New(),
	}
}

func export(store *mirror.ScreeningStore, screenings []entity.Screening) error {
	return store.ExportFrom(func() ([]entity.Screening, error) {
		return screenings, nil
	})
}

func TestScreeningExportReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), mirror.ScreeningFile)
	store := mirror.NewScreeningStore(path, zap.NewNop())

	first := sampleScreening(100)
	second := sampleScreening(60)
	require.NoError(t, export(store, []entity.Screening{first, second}))

	got, err := store.Read()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestScreeningExportReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), mirror.ScreeningFile)
	store := mirror.NewScreeningStore(path, zap.NewNop())

	screening := sampleScreening(100)
	require.NoError(t, export(store, []entity.Screening{screening}))

	// A later export with a changed seat count fully replaces the file.
	screening.AvailableSeats = 97
	require.NoError(t, export(store, []entity.Screening{screening}))

	got, err := store.Read()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 97, got[0].AvailableSeats)
}

func TestScreeningReadMissingFile(t *testing.T) {
	store := mirror.NewScreeningStore(filepath.Join(t.TempDir(), mirror.ScreeningFile), zap.NewNop())

	got, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScreeningReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), mirror.ScreeningFile)
	content := "id,date,time,available_seats,theater_id,movie_id\n" +
		"not-a-uuid,2026-08-30,18:00:00,5," + uuid.New().String() + "," + uuid.New().String() + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store := mirror.NewScreeningStore(path, zap.NewNop())
	_, err := store.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestScreeningExportConcurrentWriters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, mirror.ScreeningFile)
	store := mirror.NewScreeningStore(path, zap.NewNop())

	screenings := []entity.Screening{sampleScreening(100), sampleScreening(50)}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, export(store, screenings))
		}()
	}
	wg.Wait()

	// Whatever export landed last, the file is complete and parseable.
	got, err := store.Read()
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, mirror.ScreeningFile, entries[0].Name())
}

func sampleBookingRow() mirror.BookingRow {
	return mirror.BookingRow{
		TransactionID:   uuid.New(),
		UserID:          uuid.New(),
		CustomerName:    "Jane Doe",
		NumberOfTickets: 3,
		ScreeningDate:   "2026-08-30",
		ScreeningTime:   "18:00:00",
		MovieID:         uuid.New(),
		ScreeningID:     uuid.New(),
		Timestamp:       time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC),
	}
}

func TestBookingAppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), mirror.BookingFile)
	store := mirror.NewBookingStore(path, zap.NewNop())

	first := sampleBookingRow()
	second := sampleBookingRow()
	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "transaction_id,"))

	got, err := store.Read()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestBookingAppendPreservesEarlierRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), mirror.BookingFile)
	store := mirror.NewBookingStore(path, zap.NewNop())

	first := sampleBookingRow()
	require.NoError(t, store.Append(first))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Append(sampleBookingRow()))

	after, err := os.ReadFile(path)
	require.NoError(t, err)

	// Appends only ever grow the file.
	assert.True(t, strings.HasPrefix(string(after), string(before)))
}

func TestBookingReadMissingFile(t *testing.T) {
	store := mirror.NewBookingStore(filepath.Join(t.TempDir(), mirror.BookingFile), zap.NewNop())

	got, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingReadRejectsBadTicketCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), mirror.BookingFile)
	row := sampleBookingRow()
	content := "transaction_id,user_id,customer_name,number_of_tickets,date,time,movie_id,screening_id,timestamp\n" +
		row.TransactionID.String() + "," + row.UserID.String() + ",Jane Doe,0,2026-08-30,18:00:00," +
		row.MovieID.String() + "," + row.ScreeningID.String() + ",2026-08-29 14:30:00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store := mirror.NewBookingStore(path, zap.NewNop())
	_, err := store.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ticket count")
}
