package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRU кеш в памяти процесса с вытеснением по размеру и времени жизни.
type LRU[V any] struct {
	c *expirable.LRU[string, V]
}

func NewLRU[V any](size int, ttl time.Duration) *LRU[V] {
	if size <= 0 {
		size = DefaultSize
	}
	return &LRU[V]{c: expirable.NewLRU[string, V](size, nil, ttl)}
}

func (l *LRU[V]) Get(_ context.Context, key string) (V, bool) {
	return l.c.Get(key)
}

func (l *LRU[V]) Put(_ context.Context, key string, value V) {
	l.c.Add(key, value)
}

func (l *LRU[V]) Invalidate(_ context.Context, key string) {
	l.c.Remove(key)
}

func (l *LRU[V]) Purge(_ context.Context) {
	l.c.Purge()
}
