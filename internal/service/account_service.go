package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AccountServiceArgs struct {
	UOW          uow.UOW
	Allocator    *AccountNumberAllocator
	Customers    CustomerLookup
	Ledger       *LedgerService
	AccountCache AccountCache
	ListCache    AccountListCache
	Logger       *logrus.Logger
}

type AccountService struct {
	uow          uow.UOW
	accountRepo  AccountRepository
	allocator    *AccountNumberAllocator
	customers    CustomerLookup
	ledger       *LedgerService
	accountCache AccountCache
	listCache    AccountListCache
	logger       *logrus.Entry
	now          func() time.Time
}

func NewAccountService(args AccountServiceArgs) (*AccountService, error) {
	accountRepo, err := uow.GetRepositoryAs[AccountRepository](args.UOW, uow.RepositoryName(repoargs.AccountRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &AccountService{
		uow:          args.UOW,
		accountRepo:  accountRepo,
		allocator:    args.Allocator,
		customers:    args.Customers,
		ledger:       args.Ledger,
		accountCache: args.AccountCache,
		listCache:    args.ListCache,
		logger: args.Logger.WithFields(logrus.Fields{
			"component": "service",
			"module":    "account",
		}),
		now: time.Now,
	}, nil
}

type OpenAccountArgs struct {
	CustomerID  int64
	Kind        domain.AccountKind
	FirstAmount decimal.Decimal
	// InterestRate и MaturityMonths учитываются только для срочных счетов. Пустые значения заменяются
	// значениями по умолчанию.
	InterestRate   *decimal.Decimal
	MaturityMonths *int
}

// AccountOperation результат изменения баланса: новое состояние счета и запись журнала.
type AccountOperation struct {
	Account     *domain.Account
	Transaction *domain.Transaction
}

// Open открывает счет клиенту. Клиент должен существовать, иначе вернется domain.ErrCustomerNotFound
// (или domain.ErrServiceUnavailable, если сервис клиентов недоступен).
// Если выданный номер уже занят, счетчик номеров синхронизируется с базой и возвращается
// domain.ErrAccountNumberConflict. Повтор запроса остается на клиенте.
func (s *AccountService) Open(ctx context.Context, args OpenAccountArgs) (*domain.Account, error) {
	if !args.FirstAmount.IsPositive() {
		return nil, fmt.Errorf("opening account: %w", domain.ErrInvalidAmount)
	}
	if !args.Kind.Valid() {
		return nil, fmt.Errorf("opening account: %w: unknown kind %q", domain.ErrInvalidAccountType, args.Kind)
	}

	if _, err := s.customers.FindCustomer(ctx, args.CustomerID); err != nil {
		return nil, fmt.Errorf("opening account: %w", err)
	}

	openedAt := s.now()
	createArgs := repoargs.CreateAccount{
		No:         s.allocator.Next(),
		CustomerID: args.CustomerID,
		Kind:       args.Kind,
		Balance:    args.FirstAmount,
		OpenedAt:   openedAt,
	}
	if args.Kind == domain.AccountKindTerm {
		rate := domain.DefaultTermInterestRate
		if args.InterestRate != nil {
			rate = *args.InterestRate
		}
		months := domain.DefaultTermMaturityMonths
		if args.MaturityMonths != nil {
			months = *args.MaturityMonths
		}
		createArgs.Term = domain.NewTermDetails(rate, months, openedAt)
	}

	account, createErr := s.accountRepo.Create(ctx, createArgs)
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			s.logger.WithField("accountNo", createArgs.No).Warn("account number already taken, reseeding allocator")
			if reseedErr := s.allocator.Reseed(ctx); reseedErr != nil {
				s.logger.WithError(reseedErr).Error("reseed account number allocator")
			}
			return nil, fmt.Errorf("opening account: %w", domain.ErrAccountNumberConflict)
		}
		return nil, fmt.Errorf("opening account: %w", createErr)
	}

	s.purgeCaches(ctx)
	s.logger.WithFields(logrus.Fields{
		"accountNo":  account.No,
		"customerId": account.CustomerID,
		"kind":       account.Kind,
	}).Info("account opened")
	return account, nil
}

// Get возвращает счет по номеру, сначала заглядывая в кеш.
func (s *AccountService) Get(ctx context.Context, no string) (*domain.Account, error) {
	if cached, ok := s.accountCache.Get(ctx, no); ok {
		return &cached, nil
	}
	account, err := s.accountRepo.FindByNo(ctx, no)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", notFoundAs(err, domain.ErrAccountNotFound))
	}
	s.accountCache.Put(ctx, no, *account)
	return account, nil
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accounts, nil
}

// ListByCustomer возвращает все счета клиента. Клиент проверяется так же, как при открытии счета.
func (s *AccountService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	if _, err := s.customers.FindCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("listing customer accounts: %w", err)
	}

	key := strconv.FormatInt(customerID, 10)
	if cached, ok := s.listCache.Get(ctx, key); ok {
		return cached, nil
	}
	accounts, err := s.accountRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer accounts: %w", err)
	}
	s.listCache.Put(ctx, key, accounts)
	return accounts, nil
}

// Close закрывает счет. Повторное закрытие возвращает domain.ErrAccountAlreadyClosed.
func (s *AccountService) Close(ctx context.Context, no string) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		account, findErr := repo.FindByNoForUpdate(c, no)
		if findErr != nil {
			return notFoundAs(findErr, domain.ErrAccountNotFound)
		}
		if err := account.Close(); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := repo.UpdateState(c, repoargs.UpdateAccountState{
			No:      account.No,
			Balance: account.Balance,
			Active:  account.Active,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		tx.AfterCommit(s.purgeCaches)
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("closing account: %w", txErr)
	}
	s.logger.WithField("accountNo", no).Info("account closed")
	return nil
}

// Deposit зачисляет amount на счет.
func (s *AccountService) Deposit(
	ctx context.Context,
	no string,
	amount decimal.Decimal,
	explanation string,
) (*AccountOperation, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("deposit: %w", domain.ErrInvalidAmount)
	}
	op, err := s.apply(ctx, no, explanation, func(account *domain.Account) (domain.TransactionType, decimal.Decimal, error) {
		return domain.TransactionTypeDeposit, amount, account.Deposit(amount)
	})
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	return op, nil
}

// Withdraw списывает amount со счета. При нехватке средств баланс не меняется и запись в журнал не создается.
func (s *AccountService) Withdraw(
	ctx context.Context,
	no string,
	amount decimal.Decimal,
	explanation string,
) (*AccountOperation, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdraw: %w", domain.ErrInvalidAmount)
	}
	op, err := s.apply(ctx, no, explanation, func(account *domain.Account) (domain.TransactionType, decimal.Decimal, error) {
		return domain.TransactionTypeWithdraw, amount, account.Withdraw(amount)
	})
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	return op, nil
}

// AccrueInterest начисляет проценты на срочный счет.
func (s *AccountService) AccrueInterest(ctx context.Context, no string) (*AccountOperation, error) {
	op, err := s.apply(ctx, no, "interest accrual", func(account *domain.Account) (domain.TransactionType, decimal.Decimal, error) {
		interest, accrueErr := account.AccrueInterest()
		return domain.TransactionTypeInterestAccrual, interest, accrueErr
	})
	if err != nil {
		return nil, fmt.Errorf("accrue interest: %w", err)
	}
	return op, nil
}

type accountMutation func(account *domain.Account) (domain.TransactionType, decimal.Decimal, error)

// apply выполняет изменение баланса под блокировкой строки счета: читает счет FOR UPDATE, применяет mutate,
// сохраняет состояние и пишет запись в журнал в одной транзакции.
func (s *AccountService) apply(
	ctx context.Context,
	no string,
	explanation string,
	mutate accountMutation,
) (*AccountOperation, error) {
	var op AccountOperation

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		account, findErr := repo.FindByNoForUpdate(c, no)
		if findErr != nil {
			return notFoundAs(findErr, domain.ErrAccountNotFound)
		}

		previous := account.Balance
		txType, amount, mutateErr := mutate(account)
		if mutateErr != nil {
			return mutateErr
		}

		updated, updErr := repo.UpdateState(c, repoargs.UpdateAccountState{
			No:      account.No,
			Balance: account.Balance,
			Active:  account.Active,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		record, recordErr := s.ledger.RecordAndPublish(c, tx, RecordArgs{
			Account:         updated,
			Type:            txType,
			Amount:          amount,
			PreviousBalance: previous,
			Explanation:     explanation,
		})
		if recordErr != nil {
			return recordErr
		}

		op = AccountOperation{Account: updated, Transaction: record}
		tx.AfterCommit(s.purgeCaches)
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}

	s.logger.WithFields(logrus.Fields{
		"accountNo":       op.Account.No,
		"transactionCode": op.Transaction.Code,
		"type":            op.Transaction.Type,
		"newBalance":      op.Account.Balance.String(),
	}).Info("balance changed")
	return &op, nil
}

// purgeCaches сбрасывает оба региона кеша целиком.
func (s *AccountService) purgeCaches(ctx context.Context) {
	s.accountCache.Purge(ctx)
	s.listCache.Purge(ctx)
}
