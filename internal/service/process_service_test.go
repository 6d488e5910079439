package service

import (
	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// Фасад проверяется поверх того же окружения, что и AccountService.

func (s *AccountServiceTestSuite) processService() *ProcessService {
	return NewProcessService(s.accountService, s.accountService.ledger)
}

func (s *AccountServiceTestSuite) TestProcessDepositAndHistory() {
	ctx := s.T().Context()
	rate := decimal.RequireFromString("0.10")
	s.expectCustomer(1)
	account, err := s.accountService.Open(ctx, OpenAccountArgs{
		CustomerID:   1,
		Kind:         domain.AccountKindTerm,
		FirstAmount:  decimal.NewFromInt(200),
		InterestRate: &rate,
	})
	s.Require().NoError(err)
	processes := s.processService()

	deposit, err := processes.DepositMoney(ctx, account.No, decimal.NewFromInt(100), "bonus")
	s.Require().NoError(err)
	s.Equal("bonus", deposit.Transaction.Explanation)
	s.Require().NotNil(deposit.InterestRate)
	s.True(rate.Equal(*deposit.InterestRate))

	interest, err := processes.EarnInterest(ctx, account.No)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(330).Equal(interest.Transaction.NewBalance))

	_, err = processes.WithdrawMoney(ctx, account.No, decimal.NewFromInt(1000), "")
	s.ErrorIs(err, domain.ErrInsufficientBalance)

	s.mockAccountCache.EXPECT().Get(gomock.Any(), account.No).Return(domain.Account{}, false).Times(2)
	s.mockAccountCache.EXPECT().Put(gomock.Any(), account.No, gomock.Any()).Times(2)
	s.mockTxRepo.EXPECT().ListByAccount(gomock.Any(), account.No).Return(s.records, nil)

	amount, err := processes.Amount(ctx, account.No)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(330).Equal(amount.Balance))

	history, err := processes.AccountHistory(ctx, account.No)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(domain.TransactionTypeDeposit, history[0].Transaction.Type)
	s.Equal(domain.TransactionTypeInterestAccrual, history[1].Transaction.Type)
}
