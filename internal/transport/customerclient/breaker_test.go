package customerclient

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/transport/customerclient/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/suite"
)

type BreakerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	next *mocks.MockLookup
	l    *logrus.Logger
}

func TestBreakerSuite(t *testing.T) {
	suite.Run(t, new(BreakerTestSuite))
}

func (s *BreakerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.next = mocks.NewMockLookup(s.ctrl)
	s.l = logrus.New()
	s.l.SetOutput(io.Discard)
}

func (s *BreakerTestSuite) newBreaker() *Breaker {
	return NewBreaker(s.next, FailFast{}, BreakerSettings{
		ConsecutiveFailures: 2,
		OpenTimeout:         time.Minute,
	}, s.l)
}

func (s *BreakerTestSuite) TestPassThrough() {
	want := &domain.Customer{ID: 1, FullName: "Anna"}
	s.next.EXPECT().FindCustomer(gomock.Any(), int64(1)).Return(want, nil)

	got, err := s.newBreaker().FindCustomer(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *BreakerTestSuite) TestNotFoundIsNotFailure() {
	b := s.newBreaker()
	s.next.EXPECT().FindCustomer(gomock.Any(), int64(2)).
		Return(nil, domain.ErrCustomerNotFound).Times(3)

	for range 3 {
		_, err := b.FindCustomer(s.T().Context(), 2)
		s.Require().ErrorIs(err, domain.ErrCustomerNotFound)
	}
	s.Equal(gobreaker.StateClosed, b.State())
}

func (s *BreakerTestSuite) TestOpensAfterFailures() {
	b := s.newBreaker()
	s.next.EXPECT().FindCustomer(gomock.Any(), int64(3)).
		Return(nil, errors.New("connection refused")).Times(2)

	for range 2 {
		_, err := b.FindCustomer(s.T().Context(), 3)
		s.Require().ErrorIs(err, domain.ErrServiceUnavailable)
	}
	s.Equal(gobreaker.StateOpen, b.State())

	// цепь разомкнута, вызовов в next больше нет.
	_, err := b.FindCustomer(s.T().Context(), 3)
	s.Require().ErrorIs(err, domain.ErrServiceUnavailable)
}
