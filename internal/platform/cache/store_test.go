package cache

import (
	"context"
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	store.Set(ctx, "k", 42)
	got, ok := store.Get(ctx, "k")
	if !ok || got != 42 {
		t.Fatalf("expected hit with 42, got %v ok=%t", got, ok)
	}

	store.Delete(ctx, "k")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStoreExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "k", "v")

	now = now.Add(59 * time.Second)
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit inside the TTL")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected miss past the TTL")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "k", "v")

	now = now.Add(24 * time.Hour)
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatalf("expected zero-TTL entry to survive")
	}
}

func TestStoreIgnoresEmptyKey(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "", "v")
	if store.Len() != 0 {
		t.Fatalf("empty key must not be stored")
	}
	if _, ok := store.Get(ctx, ""); ok {
		t.Fatalf("empty key must not hit")
	}
}
