package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateAccount struct {
	No         string
	CustomerID int64
	Kind       domain.AccountKind
	Balance    decimal.Decimal
	OpenedAt   time.Time
	Term       *domain.TermDetails
}

type UpdateAccountState struct {
	No      string
	Balance decimal.Decimal
	Active  bool
}
