package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи попаданий и промахов
type MetricsRecorder interface {
	ObserveCache(resource string, hit bool)
}

// Cache read-through кэш ответов Lobeca API в redis.
// Ошибки redis не пробрасываются: запрос уходит напрямую в API.
// nil *Cache работает как сквозной кэш без хранения.
type Cache struct {
	rdb     *redis.Client
	ttl     time.Duration
	metrics MetricsRecorder
	log     Logger
}

// New создает кэш
func New(rdb *redis.Client, ttl time.Duration, metrics MetricsRecorder, log Logger) *Cache {
	return &Cache{
		rdb:     rdb,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

// Remember возвращает значение из кэша или вызывает fetch и сохраняет результат
func Remember[T any](ctx context.Context, c *Cache, resource, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	if c == nil || c.rdb == nil {
		return fetch(ctx)
	}

	var cached T
	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			c.observe(resource, true)
			return cached, nil
		}
		c.log.Warn("cache: corrupted value for key=%s, refetching", key)
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("cache: get key=%s failed: %v", key, err)
	}
	c.observe(resource, false)

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	if err := c.set(ctx, key, value); err != nil {
		c.log.Warn("cache: set key=%s failed: %v", key, err)
	}

	return value, nil
}

// Delete удаляет ключи
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Error("cache: delete keys=%v failed: %v", keys, err)
	}
}

// Invalidate сбрасывает ключи по таблице правил для мутации
func (c *Cache) Invalidate(ctx context.Context, m Mutation) {
	if c == nil {
		return
	}
	keys, err := KeysFor(m)
	if err != nil {
		c.log.Error("cache: %v", err)
		return
	}
	c.Delete(ctx, keys...)
}

func (c *Cache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) observe(resource string, hit bool) {
	if c.metrics != nil {
		c.metrics.ObserveCache(resource, hit)
	}
}
