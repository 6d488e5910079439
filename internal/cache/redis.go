package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const scanBatch = 100

// Redis общий кеш для нескольких экземпляров сервиса. Ключи region хранятся с префиксом "<region>:".
type Redis[V any] struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *logrus.Entry
}

func NewRedis[V any](client redis.UniversalClient, region string, ttl time.Duration, l *logrus.Logger) *Redis[V] {
	return &Redis[V]{
		client: client,
		prefix: region + ":",
		ttl:    ttl,
		logger: l.WithFields(logrus.Fields{
			"component": "cache",
			"module":    region,
		}),
	}
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, bool) {
	var value V
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("key", key).Warn("redis get")
		}
		return value, false
	}
	if err = json.Unmarshal(raw, &value); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("decode cached value")
		return value, false
	}
	return value, true
}

func (r *Redis[V]) Put(ctx context.Context, key string, value V) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("encode cached value")
		return
	}
	if err = r.client.Set(ctx, r.prefix+key, raw, r.ttl).Err(); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("redis set")
	}
}

func (r *Redis[V]) Invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("redis del")
	}
}

// Purge удаляет все ключи региона.
func (r *Redis[V]) Purge(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatch).Result()
		if err != nil {
			r.logger.WithError(err).Warn("redis scan")
			return
		}
		if len(keys) > 0 {
			if delErr := r.client.Del(ctx, keys...).Err(); delErr != nil {
				r.logger.WithError(delErr).Warn("redis purge")
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}
