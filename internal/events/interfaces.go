package events

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-bank/internal/domain"
)

// Producer отправляет сообщение в топик брокера.
type Producer interface {
	Publish(ctx context.Context, topic string, key string, value []byte) error
}

// Notifier уведомляет о проведенной операции.
type Notifier interface {
	Notify(ctx context.Context, event domain.TransactionEvent) error
}
