package service

import (
	"context"
	"io"
	"testing"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/internal/service/mocks"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-bank/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockTxRepo      *mocks.MockTransactionRepository
	mockAccountRepo *mocks.MockAccountRepository
	mockPublisher   *mocks.MockEventPublisher
	ledger          *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockPublisher = mocks.NewMockEventPublisher(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	ledger, err := NewLedgerService(s.mockUOW, s.mockPublisher, l)
	s.Require().NoError(err)
	s.ledger = ledger
}

func (s *LedgerServiceTestSuite) TestFormatTransactionCode() {
	s.Equal("TXN-001", FormatTransactionCode(1))
	s.Equal("TXN-042", FormatTransactionCode(42))
	s.Equal("TXN-1234", FormatTransactionCode(1234))
}

func (s *LedgerServiceTestSuite) TestRecordAndPublishAfterCommit() {
	account := &domain.Account{No: "1001", CustomerID: 3, Balance: decimal.NewFromInt(150), Active: true}

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).Return(s.mockTxRepo, nil)
	s.mockTxRepo.EXPECT().NextCodeSeq(gomock.Any()).Return(int64(7), nil)
	s.mockTxRepo.EXPECT().Create(gomock.Any(), repoargs.CreateTransaction{
		Code:            "TXN-007",
		AccountNo:       "1001",
		CustomerID:      3,
		Type:            domain.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(50),
		PreviousBalance: decimal.NewFromInt(100),
		NewBalance:      decimal.NewFromInt(150),
		Explanation:     "cash",
	}).Return(&domain.Transaction{
		ID:              1,
		Code:            "TXN-007",
		AccountNo:       "1001",
		CustomerID:      3,
		Type:            domain.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(50),
		PreviousBalance: decimal.NewFromInt(100),
		NewBalance:      decimal.NewFromInt(150),
		Successful:      true,
	}, nil)

	var hook func(context.Context)
	s.mockTX.EXPECT().AfterCommit(gomock.Any()).Do(func(fn func(context.Context)) { hook = fn })

	record, err := s.ledger.RecordAndPublish(s.T().Context(), s.mockTX, RecordArgs{
		Account:         account,
		Type:            domain.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(50),
		PreviousBalance: decimal.NewFromInt(100),
		Explanation:     "cash",
	})
	s.Require().NoError(err)
	s.Equal("TXN-007", record.Code)

	// до коммита событие не отправляется.
	s.Require().NotNil(hook)
	s.mockPublisher.EXPECT().Enqueue(gomock.Any()).Do(func(e domain.TransactionEvent) {
		s.Equal("TXN-007", e.TransactionID)
		s.Equal("1001", e.AccountNo)
		s.True(e.Successful)
	})
	hook(s.T().Context())
}

func (s *LedgerServiceTestSuite) TestHistory() {
	s.mockAccountRepo.EXPECT().FindByNo(gomock.Any(), "1001").Return(&domain.Account{No: "1001"}, nil)
	s.mockTxRepo.EXPECT().ListByAccount(gomock.Any(), "1001").Return([]domain.Transaction{
		{ID: 1, Code: "TXN-001"},
		{ID: 2, Code: "TXN-002"},
	}, nil)

	records, err := s.ledger.History(s.T().Context(), "1001")
	s.Require().NoError(err)
	s.Len(records, 2)
	s.Equal("TXN-001", records[0].Code)
}

func (s *LedgerServiceTestSuite) TestHistoryUnknownAccount() {
	s.mockAccountRepo.EXPECT().FindByNo(gomock.Any(), "404").Return(nil, domain.ErrRecordNotFound)

	_, err := s.ledger.History(s.T().Context(), "404")
	s.ErrorIs(err, domain.ErrAccountNotFound)
}
