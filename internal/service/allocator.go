package service

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
)

// DefaultAccountNoSeed начальное значение счетчика для пустой базы. Первый номер будет 1001.
const DefaultAccountNoSeed int64 = 1000

type accountNoSource interface {
	MaxAccountNo(ctx context.Context) (int64, error)
}

// AccountNumberAllocator выдает уникальные, строго возрастающие номера счетов.
// Счетчик инициализируется из хранилища один раз, до начала обработки запросов.
type AccountNumberAllocator struct {
	counter atomic.Int64
	source  accountNoSource
}

func NewAccountNumberAllocator(ctx context.Context, source accountNoSource) (*AccountNumberAllocator, error) {
	a := &AccountNumberAllocator{source: source}
	seed, err := a.storedSeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("init account number allocator: %w", err)
	}
	a.counter.Store(seed)
	return a, nil
}

// Next возвращает следующий номер счета.
func (a *AccountNumberAllocator) Next() string {
	return strconv.FormatInt(a.counter.Add(1), 10)
}

// Current текущее значение счетчика (последний выданный номер).
func (a *AccountNumberAllocator) Current() int64 {
	return a.counter.Load()
}

// Reseed поднимает счетчик до максимального номера в хранилище. Счетчик никогда не уменьшается.
func (a *AccountNumberAllocator) Reseed(ctx context.Context) error {
	seed, err := a.storedSeed(ctx)
	if err != nil {
		return fmt.Errorf("reseed account number allocator: %w", err)
	}
	for {
		current := a.counter.Load()
		if seed <= current || a.counter.CompareAndSwap(current, seed) {
			return nil
		}
	}
}

func (a *AccountNumberAllocator) storedSeed(ctx context.Context) (int64, error) {
	maxNo, err := a.source.MaxAccountNo(ctx)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	if maxNo > 0 {
		return maxNo, nil
	}
	return DefaultAccountNoSeed, nil
}
