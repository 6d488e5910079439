package customerclient

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-bank/internal/domain"
)

type Lookup interface {
	FindCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}
