package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Domenick1991/airdata/internal/domain"
)

// Reference pools. Aircraft and capacity are drawn independently.
var (
	Routes     = []string{"NYC-LAX", "NYC-CHI", "LAX-SF", "CHI-MIA", "NYC-BOS"}
	Aircraft   = []string{"A320", "B737", "A321"}
	Capacities = []int{150, 180, 220}
)

// MinPrice is the floor applied to every fare, base and paid alike.
const MinPrice = 100.0

type farePrior struct {
	mean, stdev float64
}

// Premium routes carry higher base fares; everything else shares one tier.
var fareByRoute = map[string]farePrior{
	"NYC-LAX": {mean: 400, stdev: 50},
	"NYC-CHI": {mean: 300, stdev: 40},
}

var defaultFare = farePrior{mean: 250, stdev: 30}

// Flights generates n flight records spread uniformly over the calendar
// year. Per record the draw order is route, aircraft, capacity, date
// offset, base price; changing it changes the output for a given seed.
func Flights(r *rand.Rand, n, year int) []domain.Flight {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	flights := make([]domain.Flight, 0, n)

	for i := 0; i < n; i++ {
		route := choice(r, Routes)
		plane := choice(r, Aircraft)
		capacity := choice(r, Capacities)
		date := start.AddDate(0, 0, r.Intn(365))

		fare, ok := fareByRoute[route]
		if !ok {
			fare = defaultFare
		}
		basePrice := round2(normalFloored(r, fare.mean, fare.stdev, MinPrice))

		flights = append(flights, domain.Flight{
			ID:        fmt.Sprintf("FL%05d", i+1),
			Route:     route,
			Date:      date,
			Aircraft:  plane,
			Capacity:  capacity,
			BasePrice: basePrice,
		})
	}
	return flights
}
