package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/events"
	"github.com/fsdevblog/groph-bank/internal/notify/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gopkg.in/gomail.v2"
)

type NotifyTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSender    *mocks.MockMailSender
	mockCustomers *mocks.MockCustomerFinder
	event         domain.TransactionEvent
}

func TestNotifySuite(t *testing.T) {
	suite.Run(t, new(NotifyTestSuite))
}

func (s *NotifyTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSender = mocks.NewMockMailSender(s.mockCtrl)
	s.mockCustomers = mocks.NewMockCustomerFinder(s.mockCtrl)
	s.event = domain.TransactionEvent{
		TransactionID:   "TXN-001",
		AccountNo:       "1001",
		CustomerID:      5,
		TransactionType: domain.TransactionTypeDeposit,
		Amount:          decimal.RequireFromString("10"),
		NewBalance:      decimal.RequireFromString("110"),
		Successful:      true,
		TransactionDate: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (s *NotifyTestSuite) TestEmailSent() {
	s.mockCustomers.EXPECT().FindCustomer(gomock.Any(), int64(5)).
		Return(&domain.Customer{ID: 5, Email: "client@example.com"}, nil)
	s.mockSender.EXPECT().DialAndSend(gomock.Any()).DoAndReturn(func(msgs ...*gomail.Message) error {
		s.Require().Len(msgs, 1)
		s.Equal([]string{"client@example.com"}, msgs[0].GetHeader("To"))
		s.Equal([]string{"bank@example.com"}, msgs[0].GetHeader("From"))

		var body bytes.Buffer
		_, err := msgs[0].WriteTo(&body)
		s.Require().NoError(err)
		s.Contains(body.String(), "110.00")
		return nil
	})

	n := NewEmailNotifierWith(s.mockSender, "bank@example.com", s.mockCustomers)
	s.NoError(n.Notify(s.T().Context(), s.event))
}

func (s *NotifyTestSuite) TestEmailEscapesEventFields() {
	s.event.AccountNo = `<img src="x">`
	s.event.TransactionID = "TXN-<b>7</b>"

	s.mockCustomers.EXPECT().FindCustomer(gomock.Any(), int64(5)).
		Return(&domain.Customer{ID: 5, Email: "ayse@example.com"}, nil)
	s.mockSender.EXPECT().DialAndSend(gomock.Any()).DoAndReturn(func(msgs ...*gomail.Message) error {
		s.Require().Len(msgs, 1)

		var raw bytes.Buffer
		_, err := msgs[0].WriteTo(&raw)
		s.Require().NoError(err)
		parts := strings.SplitN(raw.String(), "\r\n\r\n", 2)
		s.Require().Len(parts, 2)
		body := parts[1]

		s.Contains(body, "&lt;b&gt;7&lt;/b&gt;")
		s.Contains(body, "&lt;img")
		s.NotContains(body, "<b>7</b>")
		s.NotContains(body, "<img")
		return nil
	})

	n := NewEmailNotifierWith(s.mockSender, "bank@example.com", s.mockCustomers)
	s.NoError(n.Notify(s.T().Context(), s.event))
}

func (s *NotifyTestSuite) TestEmailCustomerLookupFails() {
	s.mockCustomers.EXPECT().FindCustomer(gomock.Any(), int64(5)).Return(nil, domain.ErrServiceUnavailable)
	s.mockSender.EXPECT().DialAndSend(gomock.Any()).Times(0)

	n := NewEmailNotifierWith(s.mockSender, "bank@example.com", s.mockCustomers)
	s.ErrorIs(n.Notify(s.T().Context(), s.event), domain.ErrServiceUnavailable)
}

func (s *NotifyTestSuite) TestLogNotifier() {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(new(logrus.JSONFormatter))

	s.NoError(NewLogNotifier(l).Notify(context.Background(), s.event))
	s.Contains(buf.String(), `"transactionId":"TXN-001"`)
	s.Contains(buf.String(), `"newBalance":"110.00"`)
}

type failingNotifier struct{ err error }

func (f failingNotifier) Notify(context.Context, domain.TransactionEvent) error { return f.err }

func (s *NotifyTestSuite) TestMultiContinuesAfterError() {
	l := logrus.New()
	l.SetOutput(io.Discard)
	boom := errors.New("boom")

	s.mockCustomers.EXPECT().FindCustomer(gomock.Any(), int64(5)).Return(&domain.Customer{ID: 5}, nil)

	multi := Multi{
		failingNotifier{err: boom},
		NewLogNotifier(l),
		NewEmailNotifierWith(s.mockSender, "bank@example.com", s.mockCustomers),
	}
	var _ events.Notifier = multi

	s.ErrorIs(multi.Notify(s.T().Context(), s.event), boom)
}
