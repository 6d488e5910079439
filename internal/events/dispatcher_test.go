package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/events/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type DispatcherTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProducer *mocks.MockProducer
	logger       *logrus.Logger
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProducer = mocks.NewMockProducer(s.mockCtrl)
	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
}

func testEvent(code, accountNo string) domain.TransactionEvent {
	return domain.TransactionEvent{
		TransactionID:   code,
		AccountNo:       accountNo,
		CustomerID:      1,
		TransactionType: domain.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(10),
		PreviousBalance: decimal.NewFromInt(0),
		NewBalance:      decimal.NewFromInt(10),
		Successful:      true,
	}
}

func (s *DispatcherTestSuite) TestPublishKeyedByAccount() {
	var (
		mu        sync.Mutex
		published = make(map[string]string)
	)
	s.mockProducer.EXPECT().Publish(gomock.Any(), TopicTransactionEvents, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, key string, value []byte) error {
			var e domain.TransactionEvent
			s.NoError(json.Unmarshal(value, &e))
			mu.Lock()
			published[e.TransactionID] = key
			mu.Unlock()
			return nil
		}).Times(3)

	d := NewDispatcher(s.mockProducer, s.logger).SetWorkers(2)
	d.Start(s.T().Context())
	d.Enqueue(testEvent("TXN-001", "1001"))
	d.Enqueue(testEvent("TXN-002", "1002"))
	d.Enqueue(testEvent("TXN-003", "1001"))
	d.Close()

	s.Equal(map[string]string{"TXN-001": "1001", "TXN-002": "1002", "TXN-003": "1001"}, published)
}

func (s *DispatcherTestSuite) TestFailedPublishGoesToDeadLetter() {
	gomock.InOrder(
		s.mockProducer.EXPECT().Publish(gomock.Any(), TopicTransactionEvents, "1001", gomock.Any()).
			Return(errors.New("broker down")),
		s.mockProducer.EXPECT().Publish(gomock.Any(), TopicTransactionEventsDLQ, "1001", gomock.Any()).
			Return(nil),
	)

	d := NewDispatcher(s.mockProducer, s.logger).SetWorkers(1)
	d.Start(s.T().Context())
	d.Enqueue(testEvent("TXN-001", "1001"))
	d.Close()
}

func (s *DispatcherTestSuite) TestFullQueueDoesNotBlock() {
	// воркеры не запущены: первое событие занимает очередь, второе уходит в DLQ.
	s.mockProducer.EXPECT().Publish(gomock.Any(), TopicTransactionEventsDLQ, "1002", gomock.Any()).Return(nil)

	d := NewDispatcher(s.mockProducer, s.logger).SetQueueSize(1)
	d.Enqueue(testEvent("TXN-001", "1001"))
	d.Enqueue(testEvent("TXN-002", "1002"))
	d.Close()
}

func (s *DispatcherTestSuite) TestEnqueueAfterClose() {
	s.mockProducer.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	d := NewDispatcher(s.mockProducer, s.logger)
	d.Start(s.T().Context())
	d.Close()
	d.Close()
	s.NotPanics(func() { d.Enqueue(testEvent("TXN-001", "1001")) })
}
