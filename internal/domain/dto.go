package domain

import "github.com/shopspring/decimal"

type AccountKind string

const (
	// AccountKindStandard бессрочный счет без процентов (VADESIZ).
	AccountKindStandard AccountKind = "STANDARD"
	// AccountKindTerm срочный депозит с процентной ставкой и датой погашения (VADELI).
	AccountKindTerm AccountKind = "TERM"
)

func (k AccountKind) Valid() bool {
	return k == AccountKindStandard || k == AccountKindTerm
}

type TransactionType string

const (
	TransactionTypeDeposit         TransactionType = "DEPOSIT"
	TransactionTypeWithdraw        TransactionType = "WITHDRAW"
	TransactionTypeInterestAccrual TransactionType = "INTEREST_ACCRUAL"
	// TransactionTypeTransfer зарезервирован, ни одна операция его не создает.
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

const (
	// DefaultTermMaturityMonths срок депозита, если клиент его не указал.
	DefaultTermMaturityMonths = 12
	// MoneyScale количество знаков после запятой для денежных сумм.
	MoneyScale = 2
)

// DefaultTermInterestRate ставка депозита, если клиент её не указал.
var DefaultTermInterestRate = decimal.RequireFromString("0.05")
