package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Domenick1991/airdata/internal/domain"
	"github.com/Domenick1991/airdata/internal/gen"
)

const (
	FlightsFile   = "flights.csv"
	CustomersFile = "customers.csv"
	BookingsFile  = "bookings.csv"

	dateLayout = "2006-01-02"
)

// WriteCSV persists the dataset as three headered CSV files under dir,
// creating the directory if needed. Output is byte-stable for a given
// dataset.
func WriteCSV(dir string, ds *gen.Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	if err := writeFlights(filepath.Join(dir, FlightsFile), ds.Flights); err != nil {
		return err
	}
	if err := writeCustomers(filepath.Join(dir, CustomersFile), ds.Customers); err != nil {
		return err
	}
	return writeBookings(filepath.Join(dir, BookingsFile), ds.Bookings)
}

func writeFlights(path string, flights []domain.Flight) error {
	return writeFile(path, []string{"flight_id", "route", "date", "aircraft", "capacity", "base_price"},
		len(flights), func(i int) []string {
			f := flights[i]
			return []string{
				f.ID,
				f.Route,
				f.Date.Format(dateLayout),
				f.Aircraft,
				strconv.Itoa(f.Capacity),
				formatPrice(f.BasePrice),
			}
		})
}

func writeCustomers(path string, customers []domain.Customer) error {
	return writeFile(path, []string{"customer_id", "age", "income", "is_business", "home_city"},
		len(customers), func(i int) []string {
			c := customers[i]
			return []string{
				c.ID,
				strconv.Itoa(c.Age),
				strconv.Itoa(c.Income),
				strconv.Itoa(c.IsBusiness),
				c.HomeCity,
			}
		})
}

func writeBookings(path string, bookings []domain.Booking) error {
	return writeFile(path, []string{"booking_id", "flight_id", "customer_id", "booking_date", "price_paid", "advance_days", "passengers"},
		len(bookings), func(i int) []string {
			b := bookings[i]
			return []string{
				b.ID,
				b.FlightID,
				b.CustomerID,
				b.BookingDate.Format(dateLayout),
				formatPrice(b.PricePaid),
				strconv.Itoa(b.AdvanceDays),
				strconv.Itoa(b.Passengers),
			}
		})
}

func writeFile(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
