package memory

import (
	"context"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	cache := New()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Fatal("empty cache should miss")
	}

	cache.Set(ctx, "k", []byte("body"))

	val, ok := cache.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(val) != "body" {
		t.Errorf("value = %q, want %q", val, "body")
	}
}

func TestCacheExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	cache := New(WithTTL(time.Minute), withClock(clock))
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("body"))

	if _, ok := cache.Get(ctx, "k"); !ok {
		t.Fatal("fresh entry should hit")
	}

	now = now.Add(2 * time.Minute)

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Fatal("expired entry should miss")
	}
	if _, stale := cache.entries["k"]; stale {
		t.Error("expired entry not evicted")
	}
}

func TestCacheCopiesValues(t *testing.T) {
	cache := New()
	ctx := context.Background()

	src := []byte("body")
	cache.Set(ctx, "k", src)
	src[0] = 'X'

	val, _ := cache.Get(ctx, "k")
	if string(val) != "body" {
		t.Errorf("stored value mutated via caller slice: %q", val)
	}

	val[0] = 'Y'
	again, _ := cache.Get(ctx, "k")
	if string(again) != "body" {
		t.Errorf("stored value mutated via returned slice: %q", again)
	}
}
