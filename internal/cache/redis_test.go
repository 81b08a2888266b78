package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Domenick1991/airdata/config"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379", FlightsCacheTTL: 300})
	assert.NotNil(t, c)
	assert.Equal(t, 300*time.Second, c.flightsTTL)
	assert.NoError(t, c.Close())
}

func TestFlightsKey(t *testing.T) {
	// The booking service reads this exact key.
	assert.Equal(t, "cache:flights", flightsKey())
}
