package events

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/IBM/sarama"
	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/events/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockNotifier *mocks.MockNotifier
	mockProducer *mocks.MockProducer
	handler      *NotificationHandler
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockProducer = mocks.NewMockProducer(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.handler = NewNotificationHandler(s.mockNotifier, s.mockProducer, nil, l)
}

func (s *HandlersTestSuite) TestValidEvent() {
	payload := []byte(`{"transactionId":"TXN-010","accountNo":"1001","customerId":4,` +
		`"transactionType":"DEPOSIT","amount":"25.5","previousBalance":"0","newBalance":"25.5",` +
		`"successful":true,"transactionDate":"2025-03-01T12:00:00Z"}`)

	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.TransactionEvent) error {
			s.Equal("TXN-010", e.TransactionID)
			s.Equal(int64(4), e.CustomerID)
			s.Equal("25.5", e.Amount.String())
			return nil
		})
	s.mockProducer.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.handler.Handle(s.T().Context(), &sarama.ConsumerMessage{
		Topic: TopicTransactionEvents,
		Key:   []byte("1001"),
		Value: payload,
	})
}

func (s *HandlersTestSuite) TestMalformedEventForwardedRaw() {
	payload := []byte(`not a json`)

	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)
	s.mockProducer.EXPECT().Publish(gomock.Any(), TopicTransactionEventsDLQ, "1001", payload).Return(nil)

	s.handler.Handle(s.T().Context(), &sarama.ConsumerMessage{
		Topic: TopicTransactionEvents,
		Key:   []byte("1001"),
		Value: payload,
	})
}

func (s *HandlersTestSuite) TestNotifyErrorIsSwallowed() {
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	s.NotPanics(func() {
		s.handler.Handle(s.T().Context(), &sarama.ConsumerMessage{
			Topic: TopicTransactionEvents,
			Value: []byte(`{"transactionId":"TXN-011"}`),
		})
	})
}
