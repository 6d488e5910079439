package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, full_name, national_id, phone, email, registered_at`

type CustomerRepository struct {
	conn uow.DBTX
}

func NewCustomerRepository(conn uow.DBTX) *CustomerRepository {
	return &CustomerRepository{conn: conn}
}

// Create создает клиента. При совпадении national_id или email вернется domain.ErrDuplicateKey.
func (c *CustomerRepository) Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO customers (full_name, national_id, phone, email)
		VALUES ($1, $2, $3, $4) RETURNING `+customerColumns,
		args.FullName, args.NationalID, args.Phone, args.Email,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer")
	}
	return customer, nil
}

func (c *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer %d", id)
	}
	return customer, nil
}

func (c *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing customers")
	}
	customers, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		customer, scanErr := scanCustomer(row)
		if scanErr != nil {
			return domain.Customer{}, scanErr
		}
		return *customer, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing customers")
	}
	return customers, nil
}

// Update обновляет данные клиента. Дата регистрации не меняется.
func (c *CustomerRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.UpdateCustomer,
) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx,
		`UPDATE customers SET full_name = $2, national_id = $3, phone = $4, email = $5
		WHERE id = $1 RETURNING `+customerColumns,
		id, args.FullName, args.NationalID, args.Phone, args.Email,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "updating customer %d", id)
	}
	return customer, nil
}

// Delete удаляет клиента вместе со счетами и журналом операций (ON DELETE CASCADE).
func (c *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := c.conn.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting customer %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting customer %d", id)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer
	if err := row.Scan(
		&customer.ID,
		&customer.FullName,
		&customer.NationalID,
		&customer.Phone,
		&customer.Email,
		&customer.RegisteredAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &customer, nil
}
