package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_no, customer_id, kind::text, balance, opened_at, active,
	interest_rate, maturity_months, maturity_date`

type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

// Create сохраняет новый счет. Если номер уже занят вернется domain.ErrDuplicateKey.
func (a *AccountRepository) Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	var (
		rate         decimal.NullDecimal
		months       *int32
		maturityDate *time.Time
	)
	if args.Kind == domain.AccountKindTerm && args.Term != nil {
		rate = decimal.NewNullDecimal(args.Term.InterestRate)
		m := int32(args.Term.MaturityMonths) //nolint:gosec
		months = &m
		maturityDate = &args.Term.MaturityDate
	}

	row := a.conn.QueryRow(ctx,
		`INSERT INTO accounts (account_no, customer_id, kind, balance, opened_at, interest_rate, maturity_months,
			maturity_date)
		VALUES ($1, $2, $3::account_kind, $4, $5, $6, $7, $8)
		RETURNING `+accountColumns,
		args.No, args.CustomerID, string(args.Kind), args.Balance, args.OpenedAt, rate, months, maturityDate,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating account %s", args.No)
	}
	return account, nil
}

func (a *AccountRepository) FindByNo(ctx context.Context, no string) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_no = $1`, no)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account %s", no)
	}
	return account, nil
}

// FindByNoForUpdate блокирует строку счета до конца транзакции. Вызывать только внутри uow.Do.
func (a *AccountRepository) FindByNoForUpdate(ctx context.Context, no string) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_no = $1 FOR UPDATE`, no)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking account %s", no)
	}
	return account, nil
}

func (a *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := a.conn.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY opened_at, account_no`)
	if err != nil {
		return nil, convertErr(err, "listing accounts")
	}
	return collectAccounts(rows, "listing accounts")
}

func (a *AccountRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	rows, err := a.conn.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE customer_id = $1 ORDER BY opened_at, account_no`,
		customerID,
	)
	if err != nil {
		return nil, convertErr(err, "listing accounts of customer %d", customerID)
	}
	return collectAccounts(rows, "listing accounts of customer")
}

// UpdateState сохраняет баланс и признак активности счета.
func (a *AccountRepository) UpdateState(
	ctx context.Context,
	args repoargs.UpdateAccountState,
) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx,
		`UPDATE accounts SET balance = $2, active = $3 WHERE account_no = $1 RETURNING `+accountColumns,
		args.No, args.Balance, args.Active,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "updating account %s", args.No)
	}
	return account, nil
}

// MaxAccountNo возвращает наибольший числовой номер счета или 0, если счетов нет.
func (a *AccountRepository) MaxAccountNo(ctx context.Context) (int64, error) {
	var maxNo int64
	err := a.conn.QueryRow(ctx,
		`SELECT COALESCE(MAX(account_no::bigint), 0) FROM accounts WHERE account_no ~ '^[0-9]{1,18}$'`,
	).Scan(&maxNo)
	if err != nil {
		return 0, convertErr(err, "selecting max account number")
	}
	return maxNo, nil
}

func collectAccounts(rows pgx.Rows, op string) ([]domain.Account, error) {
	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		account, scanErr := scanAccount(row)
		if scanErr != nil {
			return domain.Account{}, scanErr
		}
		return *account, nil
	})
	if err != nil {
		return nil, convertErr(err, "%s", op)
	}
	return accounts, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account      domain.Account
		kind         string
		rate         decimal.NullDecimal
		months       *int32
		maturityDate *time.Time
	)
	if err := row.Scan(
		&account.No,
		&account.CustomerID,
		&kind,
		&account.Balance,
		&account.OpenedAt,
		&account.Active,
		&rate,
		&months,
		&maturityDate,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}

	account.Kind = domain.AccountKind(kind)
	if account.Kind == domain.AccountKindTerm {
		term := &domain.TermDetails{InterestRate: rate.Decimal}
		if months != nil {
			term.MaturityMonths = int(*months)
		}
		if maturityDate != nil {
			term.MaturityDate = *maturityDate
		}
		account.Term = term
	}
	return &account, nil
}
