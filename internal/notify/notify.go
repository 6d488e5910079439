// Package notify каналы уведомлений клиентов о проведенных операциях.
package notify

import (
	"context"
	"errors"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/events"
	"github.com/sirupsen/logrus"
)

// LogNotifier пишет уведомление в лог.
type LogNotifier struct {
	l *logrus.Entry
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{l: l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "log",
	})}
}

func (n *LogNotifier) Notify(_ context.Context, event domain.TransactionEvent) error {
	n.l.WithFields(logrus.Fields{
		"transactionId":   event.TransactionID,
		"accountNo":       event.AccountNo,
		"customerId":      event.CustomerID,
		"transactionType": event.TransactionType,
		"amount":          event.Amount.StringFixed(domain.MoneyScale),
		"previousBalance": event.PreviousBalance.StringFixed(domain.MoneyScale),
		"newBalance":      event.NewBalance.StringFixed(domain.MoneyScale),
		"successful":      event.Successful,
	}).Info("transaction notification")
	return nil
}

// Multi рассылает уведомление по всем каналам. Ошибка одного канала не мешает остальным.
type Multi []events.Notifier

func (m Multi) Notify(ctx context.Context, event domain.TransactionEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
