package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/sirupsen/logrus"
)

type CustomerService struct {
	customerRepo CustomerRepository
	accountCache AccountCache
	listCache    AccountListCache
	logger       *logrus.Entry
}

func NewCustomerService(
	u uow.UOW,
	accountCache AccountCache,
	listCache AccountListCache,
	l *logrus.Logger,
) (*CustomerService, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CustomerService{
		customerRepo: customerRepo,
		accountCache: accountCache,
		listCache:    listCache,
		logger: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "customer",
		}),
	}, nil
}

type CustomerArgs struct {
	FullName   string
	NationalID string
	Phone      string
	Email      string
}

// Create регистрирует клиента. Совпадение national id или email возвращает domain.ErrDuplicateKey.
func (c *CustomerService) Create(ctx context.Context, args CustomerArgs) (*domain.Customer, error) {
	customer, err := c.customerRepo.Create(ctx, repoargs.CreateCustomer(args))
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	c.logger.WithField("customerId", customer.ID).Info("customer created")
	return customer, nil
}

func (c *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", notFoundAs(err, domain.ErrCustomerNotFound))
	}
	return customer, nil
}

func (c *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := c.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return customers, nil
}

func (c *CustomerService) Update(ctx context.Context, id int64, args CustomerArgs) (*domain.Customer, error) {
	customer, err := c.customerRepo.Update(ctx, id, repoargs.UpdateCustomer(args))
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", notFoundAs(err, domain.ErrCustomerNotFound))
	}
	return customer, nil
}

// Delete удаляет клиента вместе с его счетами и журналом операций.
func (c *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := c.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting customer: %w", notFoundAs(err, domain.ErrCustomerNotFound))
	}
	// счета клиента удалены каскадом
	c.accountCache.Purge(ctx)
	c.listCache.Purge(ctx)
	c.logger.WithField("customerId", id).Info("customer deleted")
	return nil
}
