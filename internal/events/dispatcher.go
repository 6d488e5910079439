package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueueSize      uint = 1024
	defaultWorkers        uint = 4
	defaultPublishTimeout      = 5 * time.Second
)

var (
	ErrQueueFull        = errors.New("event queue is full")
	ErrDispatcherClosed = errors.New("event dispatcher is closed")
)

// Dispatcher асинхронно отправляет события об операциях в брокер. Очередь ограничена; Enqueue никогда не
// блокирует вызывающего: если очередь заполнена, событие уходит в dead letter.
type Dispatcher struct {
	producer Producer
	metrics  *metrics.Events
	l        *logrus.Entry

	topic    string
	dlqTopic string
	workers  uint

	mu     sync.RWMutex
	closed bool
	queue  chan domain.TransactionEvent
	wg     sync.WaitGroup
}

func NewDispatcher(producer Producer, l *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		producer: producer,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "dispatcher",
		}),
		topic:    TopicTransactionEvents,
		dlqTopic: TopicTransactionEventsDLQ,
		workers:  defaultWorkers,
		queue:    make(chan domain.TransactionEvent, defaultQueueSize),
	}
}

// SetWorkers устанавливает кол-во воркеров, отправляющих события. Вызывать до Start.
func (d *Dispatcher) SetWorkers(workers uint) *Dispatcher {
	if workers > 0 {
		d.workers = workers
	}
	return d
}

// SetQueueSize устанавливает размер очереди. Вызывать до Start.
func (d *Dispatcher) SetQueueSize(size uint) *Dispatcher {
	d.queue = make(chan domain.TransactionEvent, size)
	return d
}

func (d *Dispatcher) SetTopics(topic, dlqTopic string) *Dispatcher {
	d.topic = topic
	d.dlqTopic = dlqTopic
	return d
}

func (d *Dispatcher) SetMetrics(m *metrics.Events) *Dispatcher {
	d.metrics = m
	return d
}

// Start запускает воркеров. Воркеры работают до вызова Close.
func (d *Dispatcher) Start(ctx context.Context) {
	d.l.WithFields(logrus.Fields{
		"workers":   d.workers,
		"queueSize": cap(d.queue),
	}).Info("Starting")

	// отправка не должна прерываться вместе с контекстом приложения: Close дочитывает очередь.
	workerCtx := context.WithoutCancel(ctx)
	d.wg.Add(int(d.workers)) //nolint:gosec
	for i := range d.workers {
		go d.worker(workerCtx, i+1)
	}
}

// Enqueue ставит событие в очередь отправки. После Close события только логируются.
func (d *Dispatcher) Enqueue(event domain.TransactionEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.metrics.Published(metrics.ResultFailed)
		d.l.WithFields(logrus.Fields{
			"transactionId": event.TransactionID,
			"accountNo":     event.AccountNo,
			"event":         event,
		}).WithError(ErrDispatcherClosed).Error("event lost")
		return
	}
	select {
	case d.queue <- event:
	default:
		// отправка в DLQ синхронная, поэтому уводим её с горутины вызывающего.
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.deadLetter(context.Background(), event, ErrQueueFull)
		}()
	}
}

// Close перестает принимать события, дожидается отправки уже поставленных в очередь.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.l.Info("stopped")
}

func (d *Dispatcher) worker(ctx context.Context, workerID uint) {
	defer d.wg.Done()

	for event := range d.queue {
		l := d.l.WithFields(logrus.Fields{
			"worker":        workerID,
			"transactionId": event.TransactionID,
			"accountNo":     event.AccountNo,
		})
		if err := d.publish(ctx, d.topic, event); err != nil {
			l.WithError(err).Error("publish transaction event")
			d.metrics.Published(metrics.ResultFailed)
			d.deadLetter(ctx, event, err)
			continue
		}
		d.metrics.Published(metrics.ResultOK)
		l.Debug("transaction event published")
	}
}

func (d *Dispatcher) publish(ctx context.Context, topic string, event domain.TransactionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err //nolint:wrapcheck
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultPublishTimeout)
	defer cancel()
	return d.producer.Publish(reqCtx, topic, event.AccountNo, payload) //nolint:wrapcheck
}

// deadLetter пытается отправить событие в DLQ топик. Если и это не удалось, событие остается только в логе.
func (d *Dispatcher) deadLetter(ctx context.Context, event domain.TransactionEvent, cause error) {
	d.metrics.Published(metrics.ResultDeadLetter)
	l := d.l.WithFields(logrus.Fields{
		"transactionId": event.TransactionID,
		"accountNo":     event.AccountNo,
		"cause":         cause.Error(),
	})
	if err := d.publish(ctx, d.dlqTopic, event); err != nil {
		l.WithError(err).WithField("event", event).Error("event lost: dead letter publish failed")
		return
	}
	l.Warn("event sent to dead letter topic")
}
