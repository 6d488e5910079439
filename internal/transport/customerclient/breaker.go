package customerclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type BreakerSettings struct {
	// ConsecutiveFailures после скольких ошибок подряд цепь размыкается.
	ConsecutiveFailures uint32
	// OpenTimeout сколько цепь остается разомкнутой до пробного запроса.
	OpenTimeout time.Duration
}

var DefaultBreakerSettings = BreakerSettings{
	ConsecutiveFailures: 5,
	OpenTimeout:         30 * time.Second,
}

// Breaker оборачивает Lookup предохранителем. Пока цепь разомкнута или запрос завершился сбоем, ответ
// берется из fallback. "Клиент не найден" сбоем не считается.
type Breaker struct {
	next     Lookup
	fallback Lookup
	cb       *gobreaker.CircuitBreaker
	l        *logrus.Entry
}

func NewBreaker(next, fallback Lookup, settings BreakerSettings, l *logrus.Logger) *Breaker {
	entry := l.WithFields(logrus.Fields{
		"component": "customerclient",
		"module":    "breaker",
	})
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "customer-service",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrCustomerNotFound)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			entry.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
	return &Breaker{next: next, fallback: fallback, cb: cb, l: entry}
}

func (b *Breaker) FindCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.FindCustomer(ctx, id)
	})
	if err == nil {
		customer, ok := res.(*domain.Customer)
		if !ok {
			return nil, fmt.Errorf("customer %d: unexpected result type %T", id, res)
		}
		return customer, nil
	}
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	b.l.WithError(err).WithField("customerId", id).Warn("customer service call failed, using fallback")
	return b.fallback.FindCustomer(ctx, id) //nolint:wrapcheck
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// FailFast fallback, который всегда сообщает о недоступности сервиса клиентов.
type FailFast struct{}

func (FailFast) FindCustomer(_ context.Context, id int64) (*domain.Customer, error) {
	return nil, fmt.Errorf("customer %d: %w", id, domain.ErrServiceUnavailable)
}
