package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/metrics"
	"github.com/sirupsen/logrus"
)

const defaultNotifyTimeout = 10 * time.Second

// NotificationHandler разбирает события об операциях и передает их Notifier. Сообщения, которые не удалось
// разобрать, пересылаются в DLQ топик без изменений.
type NotificationHandler struct {
	notifier Notifier
	dlq      Producer
	dlqTopic string
	metrics  *metrics.Events
	l        *logrus.Entry
}

func NewNotificationHandler(notifier Notifier, dlq Producer, m *metrics.Events, l *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		dlq:      dlq,
		dlqTopic: TopicTransactionEventsDLQ,
		metrics:  m,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "notification-handler",
		}),
	}
}

func (h *NotificationHandler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) {
	l := h.l.WithFields(logrus.Fields{
		"topic":     msg.Topic,
		"partition": msg.Partition,
		"offset":    msg.Offset,
		"key":       string(msg.Key),
	})

	var event domain.TransactionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		l.WithError(err).Error("malformed transaction event, forwarding to dead letter topic")
		h.metrics.Consumed(msg.Topic, metrics.ResultDeadLetter)
		if dlqErr := h.dlq.Publish(ctx, h.dlqTopic, string(msg.Key), msg.Value); dlqErr != nil {
			l.WithError(dlqErr).WithField("payload", string(msg.Value)).Error("dead letter publish failed")
		}
		return
	}

	l = l.WithFields(logrus.Fields{
		"transactionId": event.TransactionID,
		"accountNo":     event.AccountNo,
		"type":          event.TransactionType,
	})

	notifyCtx, cancel := context.WithTimeout(ctx, defaultNotifyTimeout)
	defer cancel()
	if err := h.notifier.Notify(notifyCtx, event); err != nil {
		l.WithError(err).Error("notify")
		h.metrics.Consumed(msg.Topic, metrics.ResultFailed)
		return
	}
	h.metrics.Consumed(msg.Topic, metrics.ResultOK)
	l.Debug("transaction event handled")
}

// DeadLetterHandler логирует сообщения из DLQ для ручного разбора.
type DeadLetterHandler struct {
	metrics *metrics.Events
	l       *logrus.Entry
}

func NewDeadLetterHandler(m *metrics.Events, l *logrus.Logger) *DeadLetterHandler {
	return &DeadLetterHandler{
		metrics: m,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "dlq-handler",
		}),
	}
}

func (h *DeadLetterHandler) Handle(_ context.Context, msg *sarama.ConsumerMessage) {
	h.metrics.Consumed(msg.Topic, metrics.ResultOK)
	h.l.WithFields(logrus.Fields{
		"topic":     msg.Topic,
		"partition": msg.Partition,
		"offset":    msg.Offset,
		"key":       string(msg.Key),
		"payload":   string(msg.Value),
	}).Warn("dead letter message received")
}
