package gen

import (
	"fmt"
	"math/rand"

	"github.com/Domenick1991/airdata/internal/domain"
)

const (
	minAdvanceDays = 1
	maxAdvanceDays = 89

	// Fare bands on lead time. 7..60 days applies neither multiplier.
	lastMinuteDays      = 7
	lastMinuteSurcharge = 1.3
	earlyBirdDays       = 60
	earlyBirdDiscount   = 0.85

	businessUpliftMin = 1.0
	businessUpliftMax = 1.4

	priceNoiseStdev = 0.1
)

var (
	passengerCounts  = []int{1, 2, 3}
	passengerWeights = []float64{0.7, 0.2, 0.1}
)

// Price derives the paid fare from a flight's base price and the drawn
// adjustment factors. Pure so the band and floor rules are testable
// without a random source.
func Price(base float64, advanceDays, isBusiness int, businessUplift, noise float64) float64 {
	price := base
	switch {
	case advanceDays < lastMinuteDays:
		price *= lastMinuteSurcharge
	case advanceDays > earlyBirdDays:
		price *= earlyBirdDiscount
	}
	if isBusiness == 1 {
		price *= businessUplift
	}
	price *= noise
	if price < MinPrice {
		price = MinPrice
	}
	return round2(price)
}

// Bookings generates n booking records, sampling flights and customers
// uniformly with replacement. Draw order per record: flight index,
// customer index, advance days, business uplift (business customers
// only), noise factor, passenger count.
func Bookings(r *rand.Rand, n int, flights []domain.Flight, customers []domain.Customer) []domain.Booking {
	bookings := make([]domain.Booking, 0, n)

	for i := 0; i < n; i++ {
		flight := flights[r.Intn(len(flights))]
		customer := customers[r.Intn(len(customers))]

		advanceDays := minAdvanceDays + r.Intn(maxAdvanceDays-minAdvanceDays+1)
		bookingDate := flight.Date.AddDate(0, 0, -advanceDays)

		uplift := 1.0
		if customer.IsBusiness == 1 {
			uplift = businessUpliftMin + r.Float64()*(businessUpliftMax-businessUpliftMin)
		}
		noise := r.NormFloat64()*priceNoiseStdev + 1.0

		bookings = append(bookings, domain.Booking{
			ID:          fmt.Sprintf("BK%06d", i+1),
			FlightID:    flight.ID,
			CustomerID:  customer.ID,
			BookingDate: bookingDate,
			PricePaid:   Price(flight.BasePrice, advanceDays, customer.IsBusiness, uplift, noise),
			AdvanceDays: advanceDays,
			Passengers:  weighted(r, passengerCounts, passengerWeights),
		})
	}
	return bookings
}
