package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEvent сообщение о проведенной операции. Публикуется в брокер с ключом AccountNo.
type TransactionEvent struct {
	TransactionID   string          `json:"transactionId"`
	AccountNo       string          `json:"accountNo"`
	CustomerID      int64           `json:"customerId"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	Successful      bool            `json:"successful"`
	TransactionDate time.Time       `json:"transactionDate"`
}

// NewTransactionEvent строит событие из записи журнала. Идентификатор события - код транзакции.
func NewTransactionEvent(t *Transaction) TransactionEvent {
	return TransactionEvent{
		TransactionID:   t.Code,
		AccountNo:       t.AccountNo,
		CustomerID:      t.CustomerID,
		TransactionType: t.Type,
		Amount:          t.Amount,
		PreviousBalance: t.PreviousBalance,
		NewBalance:      t.NewBalance,
		Successful:      t.Successful,
		TransactionDate: t.CreatedAt,
	}
}
