package ratelimit

import (
	"testing"
	"time"
)

func TestLimiterAllow(t *testing.T) {
	limiter := NewLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("1.2.3.4") {
			t.Fatalf("hit %d should be allowed", i+1)
		}
	}
	if limiter.Allow("1.2.3.4") {
		t.Error("hit over the limit should be denied")
	}
	if !limiter.Allow("5.6.7.8") {
		t.Error("other keys must not be affected")
	}
}

func TestLimiterWindowExpiry(t *testing.T) {
	limiter := NewLimiter(time.Minute, 2)

	current := time.Now()
	limiter.now = func() time.Time { return current }

	if !limiter.Allow("ip") || !limiter.Allow("ip") {
		t.Fatal("first two hits should be allowed")
	}
	if limiter.Allow("ip") {
		t.Fatal("third hit inside the window should be denied")
	}

	// Advance past the window; old hits expire.
	current = current.Add(61 * time.Second)
	if !limiter.Allow("ip") {
		t.Error("hit after window expiry should be allowed")
	}
}

func TestLimiterRemaining(t *testing.T) {
	limiter := NewLimiter(time.Minute, 5)

	if got := limiter.Remaining("ip"); got != 5 {
		t.Errorf("expected 5 remaining, got %d", got)
	}

	limiter.Allow("ip")
	limiter.Allow("ip")

	if got := limiter.Remaining("ip"); got != 3 {
		t.Errorf("expected 3 remaining, got %d", got)
	}
}
