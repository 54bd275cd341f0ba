package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"movik.bot/telegram-bot/internal/common"
)

const redisKeyPrefix = "bot_data:"

// RedisStore хранит документы строками под ключами bot_data:<тип>.
type RedisStore struct {
	client *redis.Client
}

// OpenRedis создаёт клиента и проверяет соединение через PING.
func OpenRedis(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("empty redis addr")
	}
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return NewRedisStore(c), nil
}

// NewRedisStore оборачивает готового клиента.
func NewRedisStore(c *redis.Client) *RedisStore {
	return &RedisStore{client: c}
}

func (s *RedisStore) Save(ctx context.Context, dataType string, content []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+dataType, content, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", dataType, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, dataType string) ([]byte, error) {
	b, err := s.client.Get(ctx, redisKeyPrefix+dataType).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", dataType, err)
	}
	return b, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
