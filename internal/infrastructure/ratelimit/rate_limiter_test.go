package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(2, 1, time.Hour)

	allowed, _ := tb.Allow()
	assert.True(t, allowed)
	allowed, _ = tb.Allow()
	assert.True(t, allowed)

	allowed, retryAfter := tb.Allow()
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := tb.Allow()
	assert.True(t, allowed)
	allowed, _ = tb.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = tb.Allow()
	assert.True(t, allowed)
}

func TestAllowIsScopedPerClientAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("10.0.0.1", "submit_review")
		assert.True(t, allowed)
	}
	allowed, _ := rl.Allow("10.0.0.1", "submit_review")
	assert.False(t, allowed)

	// A different client and a different action each get their own bucket.
	allowed, _ = rl.Allow("10.0.0.2", "submit_review")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("10.0.0.1", "create_ticket")
	assert.True(t, allowed)
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter()

	rl.Allow("10.0.0.1", "submit_review")
	rl.buckets["10.0.0.1:submit_review"].lastRefill = time.Now().Add(-2 * time.Hour)

	rl.Cleanup()

	rl.mutex.RLock()
	_, exists := rl.buckets["10.0.0.1:submit_review"]
	rl.mutex.RUnlock()
	assert.False(t, exists)
}
