package ratelimiter

import (
	"context"
	"testing"
	"time"
)

func TestAllowWithinBurst(t *testing.T) {
	limiter := New(10, 5)

	for i := 0; i < 5; i++ {
		if !limiter.Allow() {
			t.Fatalf("Request %d should be allowed within burst", i)
		}
	}

	if limiter.Allow() {
		t.Error("Request beyond burst should be rejected")
	}
}

func TestTokensReplenish(t *testing.T) {
	limiter := New(100, 1)

	if !limiter.Allow() {
		t.Fatal("First request should be allowed")
	}
	if limiter.Allow() {
		t.Fatal("Second immediate request should be rejected")
	}

	time.Sleep(50 * time.Millisecond)

	if !limiter.Allow() {
		t.Error("Request after replenishment should be allowed")
	}
}

func TestZeroRateIsUnlimited(t *testing.T) {
	limiter := New(0, 0)

	for i := 0; i < 10_000; i++ {
		if !limiter.Allow() {
			t.Fatalf("Unlimited limiter rejected request %d", i)
		}
	}
}

func TestWaitRespectsCancellation(t *testing.T) {
	limiter := New(1, 1)
	limiter.Allow() // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Error("Expected Wait to fail on cancelled context")
	}
}
