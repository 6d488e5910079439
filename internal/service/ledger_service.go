package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// FormatTransactionCode формирует код транзакции вида TXN-001.
func FormatTransactionCode(seq int64) string {
	return fmt.Sprintf("TXN-%03d", seq)
}

type LedgerService struct {
	uow         uow.UOW
	txRepo      TransactionRepository
	accountRepo AccountRepository
	publisher   EventPublisher
	logger      *logrus.Entry
}

func NewLedgerService(u uow.UOW, publisher EventPublisher, l *logrus.Logger) (*LedgerService, error) {
	txRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	accountRepo, err := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		uow:         u,
		txRepo:      txRepo,
		accountRepo: accountRepo,
		publisher:   publisher,
		logger: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "ledger",
		}),
	}, nil
}

type RecordArgs struct {
	// Account состояние счета после операции.
	Account         *domain.Account
	Type            domain.TransactionType
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	Explanation     string
}

// RecordAndPublish записывает операцию в журнал внутри транзакции tx и регистрирует отправку события
// после коммита. Ошибка отправки события не влияет на результат операции.
func (l *LedgerService) RecordAndPublish(
	ctx context.Context,
	tx uow.TX,
	args RecordArgs,
) (*domain.Transaction, error) {
	repo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	seq, seqErr := repo.NextCodeSeq(ctx)
	if seqErr != nil {
		return nil, fmt.Errorf("recording transaction: %w", seqErr)
	}

	record, createErr := repo.Create(ctx, repoargs.CreateTransaction{
		Code:            FormatTransactionCode(seq),
		AccountNo:       args.Account.No,
		CustomerID:      args.Account.CustomerID,
		Type:            args.Type,
		Amount:          args.Amount,
		PreviousBalance: args.PreviousBalance,
		NewBalance:      args.Account.Balance,
		Explanation:     args.Explanation,
	})
	if createErr != nil {
		return nil, fmt.Errorf("recording transaction: %w", createErr)
	}

	event := domain.NewTransactionEvent(record)
	tx.AfterCommit(func(_ context.Context) {
		l.logger.WithFields(logrus.Fields{
			"transactionId": event.TransactionID,
			"accountNo":     event.AccountNo,
		}).Debug("enqueue transaction event")
		l.publisher.Enqueue(event)
	})

	return record, nil
}

// History возвращает журнал операций счета в порядке их проведения.
func (l *LedgerService) History(ctx context.Context, accountNo string) ([]domain.Transaction, error) {
	if _, err := l.accountRepo.FindByNo(ctx, accountNo); err != nil {
		return nil, fmt.Errorf("account history: %w", notFoundAs(err, domain.ErrAccountNotFound))
	}
	records, err := l.txRepo.ListByAccount(ctx, accountNo)
	if err != nil {
		return nil, fmt.Errorf("account history: %w", err)
	}
	return records, nil
}
