package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/shopspring/decimal"
)

// ProcessResult операция из журнала вместе с данными счета, к которому она относится.
type ProcessResult struct {
	Transaction domain.Transaction
	// InterestRate заполнен только для срочных счетов.
	InterestRate *decimal.Decimal
}

// BalanceView текущий баланс счета.
type BalanceView struct {
	AccountNo  string
	CustomerID int64
	Balance    decimal.Decimal
}

// ProcessService фасад операций над счетами в терминах журнала.
type ProcessService struct {
	accounts *AccountService
	ledger   *LedgerService
}

func NewProcessService(accounts *AccountService, ledger *LedgerService) *ProcessService {
	return &ProcessService{accounts: accounts, ledger: ledger}
}

func (p *ProcessService) DepositMoney(
	ctx context.Context,
	accountNo string,
	amount decimal.Decimal,
	explanation string,
) (*ProcessResult, error) {
	op, err := p.accounts.Deposit(ctx, accountNo, amount, explanation)
	if err != nil {
		return nil, err
	}
	return newProcessResult(op.Transaction, op.Account), nil
}

func (p *ProcessService) WithdrawMoney(
	ctx context.Context,
	accountNo string,
	amount decimal.Decimal,
	explanation string,
) (*ProcessResult, error) {
	op, err := p.accounts.Withdraw(ctx, accountNo, amount, explanation)
	if err != nil {
		return nil, err
	}
	return newProcessResult(op.Transaction, op.Account), nil
}

func (p *ProcessService) EarnInterest(ctx context.Context, accountNo string) (*ProcessResult, error) {
	op, err := p.accounts.AccrueInterest(ctx, accountNo)
	if err != nil {
		return nil, err
	}
	return newProcessResult(op.Transaction, op.Account), nil
}

func (p *ProcessService) Amount(ctx context.Context, accountNo string) (*BalanceView, error) {
	account, err := p.accounts.Get(ctx, accountNo)
	if err != nil {
		return nil, fmt.Errorf("account amount: %w", err)
	}
	return &BalanceView{
		AccountNo:  account.No,
		CustomerID: account.CustomerID,
		Balance:    account.Balance,
	}, nil
}

func (p *ProcessService) AccountHistory(ctx context.Context, accountNo string) ([]ProcessResult, error) {
	account, err := p.accounts.Get(ctx, accountNo)
	if err != nil {
		return nil, fmt.Errorf("account history: %w", err)
	}
	records, err := p.ledger.History(ctx, accountNo)
	if err != nil {
		return nil, err
	}
	results := make([]ProcessResult, len(records))
	for i := range records {
		results[i] = *newProcessResult(&records[i], account)
	}
	return results, nil
}

func newProcessResult(record *domain.Transaction, account *domain.Account) *ProcessResult {
	res := &ProcessResult{Transaction: *record}
	if account.Term != nil {
		rate := account.Term.InterestRate
		res.InterestRate = &rate
	}
	return res
}
