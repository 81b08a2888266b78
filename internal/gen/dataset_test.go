package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 50000, cfg.Flights)
	assert.Equal(t, 15000, cfg.Customers)
	assert.Equal(t, 150000, cfg.Bookings)
	assert.Equal(t, 2023, cfg.Year)
}

func TestBuild_Counts(t *testing.T) {
	cfg := Config{Seed: 42, Flights: 120, Customers: 40, Bookings: 500, Year: 2023}
	ds := Build(cfg)

	assert.Len(t, ds.Flights, 120)
	assert.Len(t, ds.Customers, 40)
	assert.Len(t, ds.Bookings, 500)
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := Config{Seed: 42, Flights: 200, Customers: 80, Bookings: 1000, Year: 2023}

	a := Build(cfg)
	b := Build(cfg)
	assert.Equal(t, a, b)

	cfg.Seed = 7
	c := Build(cfg)
	assert.NotEqual(t, a.Bookings, c.Bookings)
}
