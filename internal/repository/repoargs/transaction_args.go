package repoargs

import (
	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	Code            string
	AccountNo       string
	CustomerID      int64
	Type            domain.TransactionType
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Explanation     string
}
