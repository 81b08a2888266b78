package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Domenick1991/airdata/internal/gen"
)

const sampleRows = 3

// Summary aggregates the headline figures of a generated dataset.
type Summary struct {
	Flights   int
	Customers int
	Bookings  int

	TotalRevenue  float64
	AverageTicket float64

	FirstFlightDate time.Time
	LastFlightDate  time.Time
}

func Summarize(ds *gen.Dataset) Summary {
	s := Summary{
		Flights:   len(ds.Flights),
		Customers: len(ds.Customers),
		Bookings:  len(ds.Bookings),
	}

	for _, b := range ds.Bookings {
		s.TotalRevenue += b.PricePaid
	}
	if s.Bookings > 0 {
		s.AverageTicket = s.TotalRevenue / float64(s.Bookings)
	}

	for i, f := range ds.Flights {
		if i == 0 || f.Date.Before(s.FirstFlightDate) {
			s.FirstFlightDate = f.Date
		}
		if i == 0 || f.Date.After(s.LastFlightDate) {
			s.LastFlightDate = f.Date
		}
	}
	return s
}

// Print writes the human-readable run report, mirroring the layout the
// analysts expect: counts, revenue, date range and a few sample rows.
func Print(w io.Writer, ds *gen.Dataset, outDir string) {
	s := Summarize(ds)

	fmt.Fprintln(w, "DATASET COMPLETE")
	fmt.Fprintln(w, strings.Repeat("=", 30))
	fmt.Fprintf(w, "Flights:   %s\n", humanize.Comma(int64(s.Flights)))
	fmt.Fprintf(w, "Customers: %s\n", humanize.Comma(int64(s.Customers)))
	fmt.Fprintf(w, "Bookings:  %s\n", humanize.Comma(int64(s.Bookings)))

	fmt.Fprintf(w, "\nTotal revenue:  $%s\n", humanize.Comma(int64(math.Round(s.TotalRevenue))))
	fmt.Fprintf(w, "Average ticket: $%.0f\n", s.AverageTicket)
	fmt.Fprintf(w, "Date range:     %s to %s\n",
		s.FirstFlightDate.Format("2006-01-02"), s.LastFlightDate.Format("2006-01-02"))

	fmt.Fprintf(w, "\nRoutes: %s\n", strings.Join(gen.Routes, ", "))
	fmt.Fprintf(w, "Files saved in %s\n", outDir)

	fmt.Fprintln(w, "\nFlights sample:")
	for i := 0; i < sampleRows && i < len(ds.Flights); i++ {
		f := ds.Flights[i]
		fmt.Fprintf(w, "  %s %s %s %s cap=%d $%.2f\n",
			f.ID, f.Route, f.Date.Format("2006-01-02"), f.Aircraft, f.Capacity, f.BasePrice)
	}

	fmt.Fprintln(w, "\nBookings sample:")
	for i := 0; i < sampleRows && i < len(ds.Bookings); i++ {
		b := ds.Bookings[i]
		fmt.Fprintf(w, "  %s %s %s %s $%.2f adv=%d pax=%d\n",
			b.ID, b.FlightID, b.CustomerID, b.BookingDate.Format("2006-01-02"),
			b.PricePaid, b.AdvanceDays, b.Passengers)
	}
}
