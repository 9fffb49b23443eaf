package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot keeps the record under a single Redis key. It serves shared kiosk or desktop
// deployments where several short-lived client processes must see the same session.
type RedisSlot struct {
	redis redis.UniversalClient
	key   string
	ttl   time.Duration
}

// NewRedisSlot stores the record at "<prefix>:<key>". A zero ttl keeps it until erased.
func NewRedisSlot(client redis.UniversalClient, prefix, key string, ttl time.Duration) *RedisSlot {
	if key == "" {
		key = DefaultSlotKey
	}
	if prefix != "" {
		key = prefix + ":" + key
	}
	return &RedisSlot{redis: client, key: key, ttl: ttl}
}

func (s *RedisSlot) Key() string {
	return s.key
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return data, nil
}

func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	if err := s.redis.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}

func (s *RedisSlot) Erase(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}
