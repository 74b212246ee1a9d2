package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memCounter struct {
	counts map[string]int64
	ttls   map[string]time.Duration
	err    error
}

func newMemCounter() *memCounter {
	return &memCounter{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (m *memCounter) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.counts[key]++
	m.ttls[key] = ttl
	return m.counts[key], nil
}

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	counter := newMemCounter()
	l := NewFixedWindow(counter, 3, time.Minute)
	now := time.Date(2024, 1, 1, 10, 0, 15, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 1; i <= 3; i++ {
		res, err := l.Allow(context.Background(), "10.0.0.1")
		if err != nil {
			t.Fatal(err)
		}
		if !res.Allowed || res.Remaining != 3-i {
			t.Fatalf("call %d: %+v", i, res)
		}
	}

	res, err := l.Allow(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatal(err)
	}
	if res.Allowed {
		t.Fatal("fourth call should be rejected")
	}
	if res.RetryAfter != 45*time.Second {
		t.Fatalf("retry after %v, want 45s", res.RetryAfter)
	}
	if res.Remaining != 0 {
		t.Fatalf("remaining %d, want 0", res.Remaining)
	}

	// other clients have their own budget
	if res, _ := l.Allow(context.Background(), "10.0.0.2"); !res.Allowed {
		t.Fatal("a different key should be allowed")
	}
	for _, ttl := range counter.ttls {
		if ttl != time.Minute {
			t.Fatalf("ttl %v, want 1m", ttl)
		}
	}
}

func TestFixedWindowResetsInNextWindow(t *testing.T) {
	l := NewFixedWindow(newMemCounter(), 1, time.Minute)
	now := time.Date(2024, 1, 1, 10, 0, 59, 0, time.UTC)
	l.now = func() time.Time { return now }

	if res, _ := l.Allow(context.Background(), "k"); !res.Allowed {
		t.Fatal("first call should pass")
	}
	if res, _ := l.Allow(context.Background(), "k"); res.Allowed {
		t.Fatal("second call in the same window should fail")
	}
	now = now.Add(2 * time.Second)
	if res, _ := l.Allow(context.Background(), "k"); !res.Allowed {
		t.Fatal("call in the next window should pass")
	}
}

func TestFixedWindowPropagatesCounterErrors(t *testing.T) {
	counter := newMemCounter()
	counter.err = errors.New("redis down")
	l := NewFixedWindow(counter, 1, time.Minute)

	if _, err := l.Allow(context.Background(), "k"); err == nil {
		t.Fatal("expected an error")
	}
}
