package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyKey(t *testing.T) {
	c := &Client{}
	assert.Equal(t, "sml:idempotency:POST|/api/v1/orders:abc-123",
		c.IdempotencyKey("POST|/api/v1/orders", "abc-123"))
	// empty parts collapse instead of leaving dangling separators
	assert.Equal(t, "sml:idempotency:abc", c.IdempotencyKey("", "abc"))
}
