package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domenick1991/airdata/internal/gen"
)

func buildSmall(t *testing.T) *gen.Dataset {
	t.Helper()
	return gen.Build(gen.Config{Seed: 42, Flights: 50, Customers: 20, Bookings: 200, Year: 2023})
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV_FilesAndHeaders(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	ds := buildSmall(t)
	require.NoError(t, WriteCSV(dir, ds))

	flights := readAll(t, filepath.Join(dir, FlightsFile))
	customers := readAll(t, filepath.Join(dir, CustomersFile))
	bookings := readAll(t, filepath.Join(dir, BookingsFile))

	assert.Equal(t, []string{"flight_id", "route", "date", "aircraft", "capacity", "base_price"}, flights[0])
	assert.Equal(t, []string{"customer_id", "age", "income", "is_business", "home_city"}, customers[0])
	assert.Equal(t, []string{"booking_id", "flight_id", "customer_id", "booking_date", "price_paid", "advance_days", "passengers"}, bookings[0])

	assert.Len(t, flights, len(ds.Flights)+1)
	assert.Len(t, customers, len(ds.Customers)+1)
	assert.Len(t, bookings, len(ds.Bookings)+1)
}

func TestWriteCSV_FieldFormats(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, buildSmall(t)))

	dateRe := regexp.MustCompile(`^2023-\d{2}-\d{2}$`)
	priceRe := regexp.MustCompile(`^\d+\.\d{2}$`)

	for _, row := range readAll(t, filepath.Join(dir, FlightsFile))[1:] {
		assert.Regexp(t, `^FL\d{5}$`, row[0])
		assert.Regexp(t, dateRe, row[2])
		assert.Regexp(t, priceRe, row[5])
	}

	for _, row := range readAll(t, filepath.Join(dir, CustomersFile))[1:] {
		assert.Regexp(t, `^CU\d{5}$`, row[0])
		// income is a whole number
		_, err := strconv.Atoi(row[2])
		assert.NoError(t, err)
	}

	for _, row := range readAll(t, filepath.Join(dir, BookingsFile))[1:] {
		assert.Regexp(t, `^BK\d{6}$`, row[0])
		assert.Regexp(t, priceRe, row[4])
	}
}

func TestWriteCSV_ByteIdentical(t *testing.T) {
	cfg := gen.Config{Seed: 42, Flights: 100, Customers: 30, Bookings: 400, Year: 2023}

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, WriteCSV(dirA, gen.Build(cfg)))
	require.NoError(t, WriteCSV(dirB, gen.Build(cfg)))

	for _, name := range []string{FlightsFile, CustomersFile, BookingsFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between runs", name)
	}
}

// Full-size run with the default seed: the first booking read back from
// disk must resolve against the flight and customer files and carry a
// valid fare.
func TestWriteCSV_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("full dataset run")
	}

	dir := t.TempDir()
	ds := gen.Build(gen.DefaultConfig())
	require.NoError(t, WriteCSV(dir, ds))

	flights := readAll(t, filepath.Join(dir, FlightsFile))
	customers := readAll(t, filepath.Join(dir, CustomersFile))
	bookings := readAll(t, filepath.Join(dir, BookingsFile))

	require.Len(t, flights, 50001)
	require.Len(t, customers, 15001)
	require.Len(t, bookings, 150001)

	flightIDs := make(map[string]bool, len(flights))
	for _, row := range flights[1:] {
		flightIDs[row[0]] = true
	}
	customerIDs := make(map[string]bool, len(customers))
	for _, row := range customers[1:] {
		customerIDs[row[0]] = true
	}

	first := bookings[1]
	assert.True(t, flightIDs[first[1]], "first booking flight %s not found", first[1])
	assert.True(t, customerIDs[first[2]], "first booking customer %s not found", first[2])

	price, err := strconv.ParseFloat(first[4], 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, price, 100.0)
	assert.Regexp(t, `^\d+\.\d{2}$`, first[4])
}
