package events

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

const defaultProducerRetries = 3

// KafkaProducer синхронный продюсер. Сообщения с одинаковым ключом попадают в одну партицию.
type KafkaProducer struct {
	producer sarama.SyncProducer
	l        *logrus.Entry
}

// NewProducerConfig конфигурация продюсера: подтверждение всеми репликами, хеш-партиционирование по ключу.
func NewProducerConfig(clientID string) *sarama.Config {
	conf := sarama.NewConfig()
	conf.ClientID = clientID
	conf.Producer.RequiredAcks = sarama.WaitForAll
	conf.Producer.Return.Successes = true
	conf.Producer.Return.Errors = true
	conf.Producer.Partitioner = sarama.NewHashPartitioner
	conf.Producer.Retry.Max = defaultProducerRetries
	conf.Producer.Retry.Backoff = 500 * time.Millisecond //nolint:mnd
	return conf
}

func NewKafkaProducer(brokers []string, clientID string, l *logrus.Logger) (*KafkaProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("init kafka producer: %w", err)
	}
	return NewKafkaProducerWith(producer, l), nil
}

// NewKafkaProducerWith оборачивает готовый sarama.SyncProducer.
func NewKafkaProducerWith(producer sarama.SyncProducer, l *logrus.Logger) *KafkaProducer {
	return &KafkaProducer{
		producer: producer,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "producer",
		}),
	}
}

func (k *KafkaProducer) Publish(ctx context.Context, topic string, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	partition, offset, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	k.l.WithFields(logrus.Fields{
		"topic":     topic,
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Debug("message published")
	return nil
}

func (k *KafkaProducer) Close() error {
	if err := k.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
