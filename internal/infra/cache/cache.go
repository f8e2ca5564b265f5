package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss возвращается, когда ключ отсутствует в кэше
var ErrCacheMiss = errors.New("cache: key not found")

// Cache обертка над redis для cache-aside чтения бронирований.
// Кэш опционален: сервис полностью работоспособен без него.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш поверх подключения к redis
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает значение по ключу
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: Get - %w", err)
	}
	return val, nil
}

// Set сохраняет значение с TTL кэша
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: Set - %w", err)
	}
	return nil
}

// Delete инвалидирует ключ
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache: Delete - %w", err)
	}
	return nil
}
