package service

import (
	"context"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateCustomer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error)
	FindByNo(ctx context.Context, no string) (*domain.Account, error)
	FindByNoForUpdate(ctx context.Context, no string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
	UpdateState(ctx context.Context, args repoargs.UpdateAccountState) (*domain.Account, error)
	MaxAccountNo(ctx context.Context) (int64, error)
}

type TransactionRepository interface {
	NextCodeSeq(ctx context.Context) (int64, error)
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountNo string) ([]domain.Transaction, error)
}

// CustomerLookup проверяет существование клиента. Реализации: локальная (репозиторий) и удаленная (HTTP).
type CustomerLookup interface {
	FindCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}

// EventPublisher принимает событие к отправке. Не должен блокировать вызывающего.
type EventPublisher interface {
	Enqueue(event domain.TransactionEvent)
}

type AccountCache interface {
	Get(ctx context.Context, key string) (domain.Account, bool)
	Put(ctx context.Context, key string, value domain.Account)
	Invalidate(ctx context.Context, key string)
	Purge(ctx context.Context)
}

type AccountListCache interface {
	Get(ctx context.Context, key string) ([]domain.Account, bool)
	Put(ctx context.Context, key string, value []domain.Account)
	Invalidate(ctx context.Context, key string)
	Purge(ctx context.Context)
}
