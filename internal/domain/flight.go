package domain

import "time"

type Flight struct {
	ID        string
	Route     string
	Date      time.Time
	Aircraft  string
	Capacity  int
	BasePrice float64
}
