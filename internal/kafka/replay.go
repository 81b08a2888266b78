package kafka

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/airdata/internal/domain"
)

// BookingEvent is the payload replayed onto the booking-events topic
// for every generated booking.
type BookingEvent struct {
	Type        string    `json:"type"`
	RunID       string    `json:"run_id"`
	BookingID   string    `json:"booking_id"`
	FlightID    string    `json:"flight_id"`
	CustomerID  string    `json:"customer_id"`
	BookingDate time.Time `json:"booking_date"`
	PricePaid   float64   `json:"price_paid"`
	AdvanceDays int       `json:"advance_days"`
	Passengers  int       `json:"passengers"`
}

const (
	eventTypeGenerated = "booking_generated"

	// Transient broker errors shouldn't abort a 150k-event replay.
	publishRetries = 3
)

type publisher interface {
	PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error
}

// Replay publishes one event per booking, keyed by booking ID. runID
// tags all events of a generation run so consumers can tell runs apart.
type Replay struct {
	producer publisher
	topic    string
	runID    string
}

func NewReplay(producer *Producer, topic, runID string) *Replay {
	return &Replay{producer: producer, topic: topic, runID: runID}
}

func (r *Replay) Publish(ctx context.Context, bookings []domain.Booking) error {
	log.Printf("replaying %d booking events to %s (run %s)", len(bookings), r.topic, r.runID)
	for _, b := range bookings {
		event := BookingEvent{
			Type:        eventTypeGenerated,
			RunID:       r.runID,
			BookingID:   b.ID,
			FlightID:    b.FlightID,
			CustomerID:  b.CustomerID,
			BookingDate: b.BookingDate,
			PricePaid:   b.PricePaid,
			AdvanceDays: b.AdvanceDays,
			Passengers:  b.Passengers,
		}
		if err := r.producer.PublishWithRetry(ctx, r.topic, b.ID, event, publishRetries); err != nil {
			return fmt.Errorf("publish booking %s: %w", b.ID, err)
		}
	}
	return nil
}
