// Package flowsession хранит сериализованные сценарии записи между запросами.
package flowsession

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	flowKeyPrefix = "booking-flow:"
	lockKeySuffix = ":submit-lock"
)

// RedisStore хранилище сценариев в Redis с TTL
type RedisStore struct {
	client  redis.Cmdable
	ttl     time.Duration
	lockTTL time.Duration
}

// NewRedisStore создает хранилище. lockTTL ограничивает время жизни блокировки
// отправки, если процесс упал, не сняв её.
func NewRedisStore(client redis.Cmdable, ttl, lockTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:  client,
		ttl:     ttl,
		lockTTL: lockTTL,
	}
}

// Load возвращает сохранённый сценарий
func (s *RedisStore) Load(ctx context.Context, flowID string) ([]byte, error) {
	data, err := s.client.Get(ctx, flowKey(flowID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get flow %s: %w", flowID, err)
	}
	return data, nil
}

// Store сохраняет сценарий и продлевает TTL
func (s *RedisStore) Store(ctx context.Context, flowID string, data []byte) error {
	if err := s.client.Set(ctx, flowKey(flowID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set flow %s: %w", flowID, err)
	}
	return nil
}

// AcquireSubmitLock SETNX-блокировка отправки бронирования
func (s *RedisStore) AcquireSubmitLock(ctx context.Context, flowID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKey(flowID), "1", s.lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx lock %s: %w", flowID, err)
	}
	return ok, nil
}

// ReleaseSubmitLock снимает блокировку отправки
func (s *RedisStore) ReleaseSubmitLock(ctx context.Context, flowID string) error {
	if err := s.client.Del(ctx, lockKey(flowID)).Err(); err != nil {
		return fmt.Errorf("redis del lock %s: %w", flowID, err)
	}
	return nil
}

func flowKey(flowID string) string {
	return flowKeyPrefix + flowID
}

func lockKey(flowID string) string {
	return flowKeyPrefix + flowID + lockKeySuffix
}
