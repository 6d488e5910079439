package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrAccountNotFound  = errors.New("account not found")

	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrAccountClosed        = errors.New("operation on closed account")
	ErrAccountAlreadyClosed = errors.New("account already closed")
	ErrInvalidAccountType   = errors.New("interest can only be accrued on term accounts")

	ErrServiceUnavailable    = errors.New("service unavailable")
	ErrAccountNumberConflict = errors.New("account number conflict")
)

type InsufficientBalanceError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func NewInsufficientBalanceError(balance, requested decimal.Decimal) error {
	return &InsufficientBalanceError{Balance: balance, Requested: requested}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s, requested %s", e.Balance, e.Requested)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
