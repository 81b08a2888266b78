package gen

import (
	"log"
	"math/rand"

	"github.com/Domenick1991/airdata/internal/domain"
)

// Config holds the generation parameters. Defaults reproduce the
// original analytics dataset.
type Config struct {
	Seed      int64
	Flights   int
	Customers int
	Bookings  int
	Year      int
}

func DefaultConfig() Config {
	return Config{
		Seed:      42,
		Flights:   50000,
		Customers: 15000,
		Bookings:  150000,
		Year:      2023,
	}
}

// Dataset is the in-memory result of one generation run. Each table is
// written by exactly one pass and never mutated afterwards.
type Dataset struct {
	Flights   []domain.Flight
	Customers []domain.Customer
	Bookings  []domain.Booking
}

// Build runs the three passes in order off a single seeded source. The
// booking pass samples from the completed flight and customer tables,
// so every reference it emits exists by construction.
func Build(cfg Config) *Dataset {
	r := rand.New(rand.NewSource(cfg.Seed))

	log.Printf("generating %d flights", cfg.Flights)
	flights := Flights(r, cfg.Flights, cfg.Year)

	log.Printf("generating %d customers", cfg.Customers)
	customers := Customers(r, cfg.Customers)

	log.Printf("generating %d bookings", cfg.Bookings)
	bookings := Bookings(r, cfg.Bookings, flights, customers)

	return &Dataset{Flights: flights, Customers: customers, Bookings: bookings}
}
