// Package cache кеши чтения для счетов. Ошибки кеша не возвращаются вызывающему: промах и сбой
// обрабатываются одинаково, данные читаются из базы.
package cache

import (
	"context"
	"time"
)

const (
	RegionAccount          = "account"
	RegionCustomerAccounts = "customer-accounts"
)

const (
	DefaultSize = 1024
	DefaultTTL  = 10 * time.Minute
)

type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Put(ctx context.Context, key string, value V)
	Invalidate(ctx context.Context, key string)
	Purge(ctx context.Context)
}
