package memory

import (
	"context"
	"testing"
	"time"
)

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "success.json"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, "success.json", []byte(`{"status":"success"}`))
	got, ok := c.Get(ctx, "success.json")
	if !ok || string(got) != `{"status":"success"}` {
		t.Fatalf("expected hit for success.json, got %q", got)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, time.Minute)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "ttl", []byte("x"))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}

	// чтение не продлевает TTL
	now = now.Add(59 * time.Second)
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit before TTL expires")
	}
	now = now.Add(2 * time.Second)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry must be removed, len=%d", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, "A", []byte("a"))
	_ = c.Set(ctx, "B", []byte("b"))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C - вытеснит B (самый старый)
	_ = c.Set(ctx, "C", []byte("c"))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()

	orig := []byte("abc")
	_ = c.Set(ctx, "Z", orig)
	orig[0] = 'X'

	// меняем то, что вернул Get - не должно влиять на кэш
	b1, _ := c.Get(ctx, "Z")
	b1[1] = 'Y'

	b2, _ := c.Get(ctx, "Z")
	if string(b2) != "abc" {
		t.Fatalf("cache should store and return copies, got %q", b2)
	}
}

func TestSet_EmptyNameIgnored(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	_ = c.Set(context.Background(), "", []byte("x"))
	if c.Len() != 0 {
		t.Fatalf("empty name must be ignored")
	}
}
