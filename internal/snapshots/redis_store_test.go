package snapshots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreSaveLoadLatest(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	for _, d := range []string{"2025-01-01", "2025-01-02"} {
		if err := store.Save(ctx, simpleSnapshot(d)); err != nil {
			t.Fatalf("save %s: %v", d, err)
		}
	}

	got, err := store.Load(ctx, "2025-01-01")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.BoardID != "board-2025-01-01" || len(got.Games) != 1 {
		t.Fatalf("unexpected snapshot %+v", got)
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Date != "2025-01-02" {
		t.Fatalf("expected latest 2025-01-02, got %s", latest.Date)
	}

	if ttl := mr.TTL("props:board:2025-01-02"); ttl != time.Hour {
		t.Fatalf("expected ttl 1h, got %s", ttl)
	}
	if v, err := mr.Get("props:board:latest"); err != nil || v != "2025-01-02" {
		t.Fatalf("unexpected latest pointer %q %v", v, err)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()
	if err := store.Save(ctx, simpleSnapshot("2025-01-01")); err != nil {
		t.Fatalf("save: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := store.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired snapshot to be gone, got %v", err)
	}
}

func TestRedisStoreNotFoundAndBadPayload(t *testing.T) {
	store, mr := newRedisStore(t, 0)
	ctx := context.Background()

	if _, err := store.Load(ctx, "2030-01-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mr.Set("props:board:2030-01-01", "{broken"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Load(ctx, "2030-01-01"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if err := store.Save(ctx, Snapshot{}); err == nil {
		t.Fatalf("expected error for empty date")
	}
}

func TestRedisStoreConnectionError(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	mr.Close()

	if err := store.Save(context.Background(), simpleSnapshot("2025-01-01")); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}

func TestNewRedisStoreFromURL(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := NewRedisStoreFromURL("redis://"+mr.Addr()+"/0", time.Minute)
	if err != nil {
		t.Fatalf("from url: %v", err)
	}
	defer store.Close()
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, err := NewRedisStoreFromURL("://bad", time.Minute); err == nil {
		t.Fatalf("expected parse error")
	}
}
