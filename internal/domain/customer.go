package domain

// IsBusiness is kept as a 0/1 flag rather than a bool so it round-trips
// through the CSV files and the analytics schema unchanged.
type Customer struct {
	ID         string
	Age        int
	Income     int
	IsBusiness int
	HomeCity   string
}
