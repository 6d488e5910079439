package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/service"
)

type CustomerServicer interface {
	Create(ctx context.Context, args service.CustomerArgs) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, args service.CustomerArgs) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type AccountServicer interface {
	Open(ctx context.Context, args service.OpenAccountArgs) (*domain.Account, error)
	Get(ctx context.Context, no string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
	Close(ctx context.Context, no string) error
	Deposit(ctx context.Context, no string, amount decimal.Decimal, explanation string) (*service.AccountOperation, error)
	Withdraw(ctx context.Context, no string, amount decimal.Decimal, explanation string) (*service.AccountOperation, error)
	AccrueInterest(ctx context.Context, no string) (*service.AccountOperation, error)
}

type ProcessServicer interface {
	DepositMoney(
		ctx context.Context,
		accountNo string,
		amount decimal.Decimal,
		explanation string,
	) (*service.ProcessResult, error)
	WithdrawMoney(
		ctx context.Context,
		accountNo string,
		amount decimal.Decimal,
		explanation string,
	) (*service.ProcessResult, error)
	EarnInterest(ctx context.Context, accountNo string) (*service.ProcessResult, error)
	Amount(ctx context.Context, accountNo string) (*service.BalanceView, error)
	AccountHistory(ctx context.Context, accountNo string) ([]service.ProcessResult, error)
}
