package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

const consumerRetryInterval = 3 * time.Second

// MessageHandler обрабатывает одно сообщение. Ошибки обработки хендлер логирует сам: сообщение
// в любом случае считается обработанным.
type MessageHandler interface {
	Handle(ctx context.Context, msg *sarama.ConsumerMessage)
}

// NewConsumerConfig конфигурация группы потребителей: чтение с самого раннего смещения для новой группы.
func NewConsumerConfig(clientID string) *sarama.Config {
	conf := sarama.NewConfig()
	conf.ClientID = clientID
	conf.Consumer.Offsets.Initial = sarama.OffsetOldest
	conf.Consumer.Return.Errors = true
	conf.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	return conf
}

// Consumer читает топики в составе consumer group и передает сообщения в MessageHandler.
type Consumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler MessageHandler
	l       *logrus.Entry
}

func NewConsumer(
	brokers []string,
	clientID string,
	groupID string,
	topics []string,
	handler MessageHandler,
	l *logrus.Logger,
) (*Consumer, error) {
	group, err := sarama.NewConsumerGroup(brokers, groupID, NewConsumerConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("init consumer group %s: %w", groupID, err)
	}
	return NewConsumerWith(group, groupID, topics, handler, l), nil
}

// NewConsumerWith оборачивает готовую sarama.ConsumerGroup.
func NewConsumerWith(
	group sarama.ConsumerGroup,
	groupID string,
	topics []string,
	handler MessageHandler,
	l *logrus.Logger,
) *Consumer {
	return &Consumer{
		group:   group,
		topics:  topics,
		handler: handler,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "consumer",
			"group":     groupID,
		}),
	}
}

// Run участвует в группе до отмены контекста. Сессия пересоздается после каждой ребалансировки.
func (c *Consumer) Run(ctx context.Context) error {
	c.l.WithField("topics", c.topics).Info("Starting")

	go func() {
		for err := range c.group.Errors() {
			c.l.WithError(err).Error("consumer group error")
		}
	}()

	for {
		if err := c.group.Consume(ctx, c.topics, &groupHandler{handler: c.handler, l: c.l}); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.l.WithError(err).Error("consume")
			select {
			case <-ctx.Done():
			case <-time.After(consumerRetryInterval):
			}
		}
		if ctx.Err() != nil {
			c.l.Info("Got stop signal, exiting...")
			return ctx.Err() //nolint:wrapcheck
		}
	}
}

func (c *Consumer) Close() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("close consumer group: %w", err)
	}
	return nil
}

// groupHandler реализует sarama.ConsumerGroupHandler. Смещение отмечается после обработки сообщения.
type groupHandler struct {
	handler MessageHandler
	l       *logrus.Entry
}

func (g *groupHandler) Setup(sess sarama.ConsumerGroupSession) error {
	g.l.WithField("claims", sess.Claims()).Debug("session started")
	return nil
}

func (g *groupHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

func (g *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			g.handler.Handle(sess.Context(), msg)
			sess.MarkMessage(msg, "")
		case <-sess.Context().Done():
			return nil
		}
	}
}
