package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Domenick1991/airdata/internal/gen"
)

// Postgres bulk-loads a generated dataset into the analytics schema.
// Tables are recreated on every run; the dataset is write-once and a
// partial load is never considered valid.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS flights (
		flight_id  TEXT PRIMARY KEY,
		route      TEXT NOT NULL,
		date       DATE NOT NULL,
		aircraft   TEXT NOT NULL,
		capacity   INT NOT NULL,
		base_price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id TEXT PRIMARY KEY,
		age         INT NOT NULL,
		income      INT NOT NULL,
		is_business INT NOT NULL,
		home_city   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		booking_id   TEXT PRIMARY KEY,
		flight_id    TEXT NOT NULL REFERENCES flights (flight_id),
		customer_id  TEXT NOT NULL REFERENCES customers (customer_id),
		booking_date DATE NOT NULL,
		price_paid   NUMERIC(10,2) NOT NULL,
		advance_days INT NOT NULL,
		passengers   INT NOT NULL
	)`,
}

func (s *Postgres) Seed(ctx context.Context, ds *gen.Dataset) error {
	for _, ddl := range schema {
		if _, err := s.db.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	if _, err := s.db.Exec(ctx, `TRUNCATE bookings, customers, flights`); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	if err := s.copyFlights(ctx, ds); err != nil {
		return err
	}
	if err := s.copyCustomers(ctx, ds); err != nil {
		return err
	}
	return s.copyBookings(ctx, ds)
}

func (s *Postgres) copyFlights(ctx context.Context, ds *gen.Dataset) error {
	n, err := s.db.CopyFrom(ctx,
		pgx.Identifier{"flights"},
		[]string{"flight_id", "route", "date", "aircraft", "capacity", "base_price"},
		pgx.CopyFromSlice(len(ds.Flights), func(i int) ([]any, error) {
			f := ds.Flights[i]
			return []any{f.ID, f.Route, f.Date, f.Aircraft, f.Capacity, f.BasePrice}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy flights: %w", err)
	}
	log.Printf("seeded %d flights", n)
	return nil
}

func (s *Postgres) copyCustomers(ctx context.Context, ds *gen.Dataset) error {
	n, err := s.db.CopyFrom(ctx,
		pgx.Identifier{"customers"},
		[]string{"customer_id", "age", "income", "is_business", "home_city"},
		pgx.CopyFromSlice(len(ds.Customers), func(i int) ([]any, error) {
			c := ds.Customers[i]
			return []any{c.ID, c.Age, c.Income, c.IsBusiness, c.HomeCity}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy customers: %w", err)
	}
	log.Printf("seeded %d customers", n)
	return nil
}

func (s *Postgres) copyBookings(ctx context.Context, ds *gen.Dataset) error {
	n, err := s.db.CopyFrom(ctx,
		pgx.Identifier{"bookings"},
		[]string{"booking_id", "flight_id", "customer_id", "booking_date", "price_paid", "advance_days", "passengers"},
		pgx.CopyFromSlice(len(ds.Bookings), func(i int) ([]any, error) {
			b := ds.Bookings[i]
			return []any{b.ID, b.FlightID, b.CustomerID, b.BookingDate, b.PricePaid, b.AdvanceDays, b.Passengers}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy bookings: %w", err)
	}
	log.Printf("seeded %d bookings", n)
	return nil
}
