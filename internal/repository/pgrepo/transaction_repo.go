package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, transaction_code, account_no, customer_id, transaction_type::text, amount,
	previous_balance, new_balance, explanation, successful, created_at`

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// NextCodeSeq возвращает следующее значение последовательности transaction_code_seq.
// Значение не возвращается при откате транзакции, поэтому в нумерации возможны пропуски.
func (t *TransactionRepository) NextCodeSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := t.conn.QueryRow(ctx, `SELECT nextval('transaction_code_seq')`).Scan(&seq); err != nil {
		return 0, convertErr(err, "next transaction code")
	}
	return seq, nil
}

func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx,
		`INSERT INTO processes (transaction_code, account_no, customer_id, transaction_type, amount,
			previous_balance, new_balance, explanation)
		VALUES ($1, $2, $3, $4::transaction_type, $5, $6, $7, $8)
		RETURNING `+transactionColumns,
		args.Code, args.AccountNo, args.CustomerID, string(args.Type), args.Amount,
		args.PreviousBalance, args.NewBalance, args.Explanation,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction %s", args.Code)
	}
	return transaction, nil
}

// ListByAccount возвращает журнал операций счета в порядке создания.
func (t *TransactionRepository) ListByAccount(ctx context.Context, accountNo string) ([]domain.Transaction, error) {
	rows, err := t.conn.Query(ctx,
		`SELECT `+transactionColumns+` FROM processes WHERE account_no = $1 ORDER BY id`,
		accountNo,
	)
	if err != nil {
		return nil, convertErr(err, "listing transactions of account %s", accountNo)
	}
	transactions, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		transaction, scanErr := scanTransaction(row)
		if scanErr != nil {
			return domain.Transaction{}, scanErr
		}
		return *transaction, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing transactions of account %s", accountNo)
	}
	return transactions, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		transaction domain.Transaction
		txType      string
	)
	if err := row.Scan(
		&transaction.ID,
		&transaction.Code,
		&transaction.AccountNo,
		&transaction.CustomerID,
		&txType,
		&transaction.Amount,
		&transaction.PreviousBalance,
		&transaction.NewBalance,
		&transaction.Explanation,
		&transaction.Successful,
		&transaction.CreatedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	transaction.Type = domain.TransactionType(txType)
	return &transaction, nil
}
