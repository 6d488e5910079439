package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/pkg/uow"
)

// LocalCustomerLookup ищет клиента в собственной базе.
type LocalCustomerLookup struct {
	customerRepo CustomerRepository
}

func NewLocalCustomerLookup(u uow.UOW) (*LocalCustomerLookup, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LocalCustomerLookup{customerRepo: customerRepo}, nil
}

func (l *LocalCustomerLookup) FindCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := l.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer %d: %w", id, notFoundAs(err, domain.ErrCustomerNotFound))
	}
	return customer, nil
}
