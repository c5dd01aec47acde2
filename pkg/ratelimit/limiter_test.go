package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLimiter_Allow(t *testing.T) {
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	l := New(3, 3)
	l.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("+5511999990000"), "attempt %d", i+1)
	}
	assert.False(t, l.Allow("+5511999990000"))
	assert.True(t, l.Allow("+5511988880000"), "other keys have their own bucket")

	current = current.Add(20 * time.Second)
	assert.True(t, l.Allow("+5511999990000"), "one token refills every 20s")
}

func TestKeyedLimiter_EvictsIdle(t *testing.T) {
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	l := New(1, 1)
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow("a"))
	current = current.Add(11 * time.Minute)
	assert.True(t, l.Allow("b"))

	assert.Len(t, l.limiters, 1)
}
