package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "props:board:"
	redisLatestKey = redisKeyPrefix + "latest"
)

// RedisStore keeps snapshots in Redis: one key per date plus a pointer to
// the latest date. Every key expires after ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisStoreFromURL parses a redis:// URL and connects.
func NewRedisStoreFromURL(rawURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisStore(redis.NewClient(opts), ttl), nil
}

func redisKey(date string) string {
	return redisKeyPrefix + date
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Save writes the snapshot and moves the latest pointer in one transaction.
func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	if snap.Date == "" {
		return errors.New("snapshot date required")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKey(snap.Date), data, s.ttl)
		pipe.Set(ctx, redisLatestKey, snap.Date, s.ttl)
		return nil
	})
	return err
}

// Load reads the snapshot stored for date.
func (s *RedisStore) Load(ctx context.Context, date string) (Snapshot, error) {
	data, err := s.client.Get(ctx, redisKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, date)
		}
		return Snapshot{}, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	if snap.Date == "" {
		snap.Date = date
	}
	return snap, nil
}

// Latest follows the latest pointer.
func (s *RedisStore) Latest(ctx context.Context) (Snapshot, error) {
	date, err := s.client.Get(ctx, redisLatestKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	return s.Load(ctx, date)
}
