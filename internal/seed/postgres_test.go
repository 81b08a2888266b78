package seed

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewPostgres(t *testing.T) {
	pool := &pgxpool.Pool{}
	s := NewPostgres(pool)
	assert.NotNil(t, s)
}

func TestSchemaCoversAllTables(t *testing.T) {
	assert.Len(t, schema, 3)
	assert.Contains(t, schema[0], "flights")
	assert.Contains(t, schema[1], "customers")
	assert.Contains(t, schema[2], "bookings")
}
