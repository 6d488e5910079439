package events

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/IBM/sarama"
	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaProducer_Publish(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)

	sp := saramamocks.NewSyncProducer(t, NewProducerConfig("test"))
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"transactionId":"TXN-001"}` {
			return errors.New("unexpected payload")
		}
		return nil
	})
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	producer := NewKafkaProducerWith(sp, l)

	require.NoError(t, producer.Publish(context.Background(), TopicTransactionEvents, "1001",
		[]byte(`{"transactionId":"TXN-001"}`)))

	err := producer.Publish(context.Background(), TopicTransactionEvents, "1001", []byte(`{}`))
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, producer.Publish(ctx, TopicTransactionEvents, "1001", []byte(`{}`)), context.Canceled)

	require.NoError(t, producer.Close())
}

func TestProducerConfig(t *testing.T) {
	conf := NewProducerConfig("bank")
	assert.Equal(t, sarama.WaitForAll, conf.Producer.RequiredAcks)
	assert.True(t, conf.Producer.Return.Successes)
	require.NoError(t, conf.Validate())
}
