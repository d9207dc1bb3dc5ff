package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		rl := NewFixedWindowLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			ok, _ := rl.Allow("1.2.3.4")
			assert.True(t, ok)
		}

		ok, retryAfter := rl.Allow("1.2.3.4")
		assert.False(t, ok)
		assert.Greater(t, retryAfter, time.Duration(0))
	})

	t.Run("keys are counted independently", func(t *testing.T) {
		rl := NewFixedWindowLimiter(1, time.Minute)

		ok, _ := rl.Allow("a")
		assert.True(t, ok)
		ok, _ = rl.Allow("a")
		assert.False(t, ok)

		ok, _ = rl.Allow("b")
		assert.True(t, ok)
	})

	t.Run("the budget comes back when the window rolls over", func(t *testing.T) {
		rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

		ok, _ := rl.Allow("x")
		assert.True(t, ok)
		ok, _ = rl.Allow("x")
		assert.False(t, ok)

		time.Sleep(30 * time.Millisecond)

		ok, _ = rl.Allow("x")
		assert.True(t, ok)
	})
}
