package domain

import "time"

type Booking struct {
	ID          string
	FlightID    string
	CustomerID  string
	BookingDate time.Time
	PricePaid   float64
	AdvanceDays int
	Passengers  int
}
