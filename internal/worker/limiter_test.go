package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1) // 100 rps, burst 1
	ctx := context.Background()

	if err := limiter.Wait(ctx, "search"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different bucket should also work
	if err := limiter.Wait(ctx, "oracle"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	// First request consumes the only token
	if err := limiter.Wait(ctx, "search"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	if limiter.Allow("search") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Different bucket has its own tokens
	if !limiter.Allow("oracle") {
		t.Errorf("expected allow for other bucket")
	}
}

func TestLimiter_SetRate(t *testing.T) {
	limiter := NewLimiter(10, 10) // fast default

	// Set strict limit for the oracle bucket
	limiter.SetRate("oracle", 0.1, 1) // very slow

	// First request passes (burst 1)
	if !limiter.Allow("oracle") {
		t.Errorf("first request should pass")
	}

	// Second request fails
	if limiter.Allow("oracle") {
		t.Errorf("second request should fail")
	}

	// Other bucket still fast
	if !limiter.Allow("search") {
		t.Errorf("other bucket should pass")
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(0.1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	// Drain the burst token, then cancel so the next Wait cannot succeed.
	if err := limiter.Wait(ctx, "search"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	cancel()

	if err := limiter.Wait(ctx, "search"); err == nil {
		t.Error("expected error from cancelled context")
	}
}
