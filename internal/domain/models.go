package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID           int64
	RegisteredAt time.Time
	FullName     string
	NationalID   string
	Phone        string
	Email        string
}

// Account счет клиента. Поле Kind определяет вариант: для AccountKindTerm заполнено поле Term,
// для AccountKindStandard оно всегда nil.
type Account struct {
	No         string
	CustomerID int64
	Kind       AccountKind
	Balance    decimal.Decimal
	OpenedAt   time.Time
	Active     bool
	Term       *TermDetails
}

type TermDetails struct {
	InterestRate   decimal.Decimal
	MaturityMonths int
	MaturityDate   time.Time
}

// NewTermDetails рассчитывает дату погашения от момента открытия счета.
func NewTermDetails(rate decimal.Decimal, months int, openedAt time.Time) *TermDetails {
	return &TermDetails{
		InterestRate:   rate,
		MaturityMonths: months,
		MaturityDate:   openedAt.AddDate(0, months, 0),
	}
}

// Deposit увеличивает баланс на amount.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.checkMutable(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw уменьшает баланс на amount. Если средств недостаточно вернется *InsufficientBalanceError.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.checkMutable(amount); err != nil {
		return err
	}
	if a.Balance.LessThan(amount) {
		return NewInsufficientBalanceError(a.Balance, amount)
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// AccrueInterest начисляет проценты balance*rate один раз за вызов и возвращает начисленную сумму.
// Период начисления не отслеживается: повторный вызов начислит проценты еще раз.
func (a *Account) AccrueInterest() (decimal.Decimal, error) {
	if !a.Active {
		return decimal.Zero, ErrAccountClosed
	}
	if a.Kind != AccountKindTerm || a.Term == nil {
		return decimal.Zero, ErrInvalidAccountType
	}
	interest := a.Balance.Mul(a.Term.InterestRate).Round(MoneyScale)
	a.Balance = a.Balance.Add(interest)
	return interest, nil
}

// Close переводит счет в неактивное состояние. Повторное закрытие - ошибка.
func (a *Account) Close() error {
	if !a.Active {
		return ErrAccountAlreadyClosed
	}
	a.Active = false
	return nil
}

func (a *Account) checkMutable(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.Active {
		return ErrAccountClosed
	}
	return nil
}

// Transaction запись журнала операций. После создания не изменяется.
type Transaction struct {
	ID              int64
	CreatedAt       time.Time
	Code            string
	AccountNo       string
	CustomerID      int64
	Type            TransactionType
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Explanation     string
	Successful      bool
}
