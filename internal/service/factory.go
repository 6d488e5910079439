package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	CustomerService *CustomerService
	AccountService  *AccountService
	LedgerService   *LedgerService
	ProcessService  *ProcessService
	Allocator       *AccountNumberAllocator
}

type FactoryArgs struct {
	UOW uow.UOW
	// CustomerLookup если не задан, клиенты ищутся в локальной базе.
	CustomerLookup CustomerLookup
	Publisher      EventPublisher
	AccountCache   AccountCache
	ListCache      AccountListCache
	Logger         *logrus.Logger
}

// Factory собирает сервисы приложения. Счетчик номеров счетов инициализируется здесь же, поэтому вызывать
// до запуска http сервера.
func Factory(ctx context.Context, args FactoryArgs) (*AppServices, error) {
	accountRepo, repoErr := uow.GetRepositoryAs[AccountRepository](args.UOW, uow.RepositoryName(repoargs.AccountRepoName))
	if repoErr != nil {
		return nil, fmt.Errorf("service factory: %w", repoErr)
	}
	allocator, allocErr := NewAccountNumberAllocator(ctx, accountRepo)
	if allocErr != nil {
		return nil, fmt.Errorf("service factory: %w", allocErr)
	}
	args.Logger.WithField("seed", allocator.Current()).Info("account number allocator initialized")

	customerService, customerErr := NewCustomerService(args.UOW, args.AccountCache, args.ListCache, args.Logger)
	if customerErr != nil {
		return nil, fmt.Errorf("service factory: %w", customerErr)
	}

	lookup := args.CustomerLookup
	if lookup == nil {
		local, lookupErr := NewLocalCustomerLookup(args.UOW)
		if lookupErr != nil {
			return nil, fmt.Errorf("service factory: %w", lookupErr)
		}
		lookup = local
	}

	ledgerService, ledgerErr := NewLedgerService(args.UOW, args.Publisher, args.Logger)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %w", ledgerErr)
	}

	accountService, accountErr := NewAccountService(AccountServiceArgs{
		UOW:          args.UOW,
		Allocator:    allocator,
		Customers:    lookup,
		Ledger:       ledgerService,
		AccountCache: args.AccountCache,
		ListCache:    args.ListCache,
		Logger:       args.Logger,
	})
	if accountErr != nil {
		return nil, fmt.Errorf("service factory: %w", accountErr)
	}

	return &AppServices{
		CustomerService: customerService,
		AccountService:  accountService,
		LedgerService:   ledgerService,
		ProcessService:  NewProcessService(accountService, ledgerService),
		Allocator:       allocator,
	}, nil
}
