package api

import (
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/service"
	"github.com/shopspring/decimal"
)

type CustomerParams struct {
	FullName   string `binding:"required,max=100"          json:"fullName"`
	NationalID string `binding:"required,national_id"      json:"nationalId"`
	Phone      string `binding:"required,max=20"           json:"phone"`
	Email      string `binding:"required,email,max=100"    json:"email"`
}

func (p CustomerParams) toArgs() service.CustomerArgs {
	return service.CustomerArgs{
		FullName:   p.FullName,
		NationalID: p.NationalID,
		Phone:      p.Phone,
		Email:      p.Email,
	}
}

type CustomerResponse struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	NationalID   string    `json:"nationalId"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func newCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		FullName:     c.FullName,
		NationalID:   c.NationalID,
		Phone:        c.Phone,
		Email:        c.Email,
		RegisteredAt: c.RegisteredAt,
	}
}

type OpenAccountParams struct {
	CustomerID  int64              `binding:"required,min=1"                   json:"customerId"`
	Kind        domain.AccountKind `binding:"required,oneof=STANDARD TERM"     json:"accountType"`
	FirstAmount decimal.Decimal    `binding:"required,gt=0"                    json:"firstAmount"`

	// InterestRate и MaturityMonths учитываются только для срочного счета.
	InterestRate   *decimal.Decimal `binding:"omitempty,gt=0,lt=1"    json:"interestRate"`
	MaturityMonths *int             `binding:"omitempty,min=1,max=600" json:"maturityMonths"`
}

type MoneyParams struct {
	Amount      decimal.Decimal `binding:"required,gt=0" json:"amount"`
	Explanation string          `binding:"max=255"       json:"explanation"`
}

type ProcessParams struct {
	AccountNo   string          `binding:"required"      json:"accountNo"`
	Amount      decimal.Decimal `binding:"required,gt=0" json:"amount"`
	Explanation string          `binding:"max=255"       json:"explanation"`
}

type AccountResponse struct {
	AccountNo  string             `json:"accountNo"`
	CustomerID int64              `json:"customerId"`
	Kind       domain.AccountKind `json:"accountType"`
	Balance    decimal.Decimal    `json:"balance"`
	OpenedAt   time.Time          `json:"openedAt"`
	Active     bool               `json:"active"`

	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	MaturityMonths *int             `json:"maturityMonths,omitempty"`
	MaturityDate   *time.Time       `json:"maturityDate,omitempty"`
}

func newAccountResponse(a *domain.Account) AccountResponse {
	res := AccountResponse{
		AccountNo:  a.No,
		CustomerID: a.CustomerID,
		Kind:       a.Kind,
		Balance:    a.Balance,
		OpenedAt:   a.OpenedAt,
		Active:     a.Active,
	}
	switch a.Kind {
	case domain.AccountKindTerm:
		if a.Term != nil {
			rate := a.Term.InterestRate
			months := a.Term.MaturityMonths
			date := a.Term.MaturityDate
			res.InterestRate = &rate
			res.MaturityMonths = &months
			res.MaturityDate = &date
		}
	case domain.AccountKindStandard:
	}
	return res
}

func newAccountsResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = newAccountResponse(&accounts[i])
	}
	return res
}

type ProcessResponse struct {
	TransactionCode string                 `json:"transactionCode"`
	AccountNo       string                 `json:"accountNo"`
	CustomerID      int64                  `json:"customerId"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	PreviousBalance decimal.Decimal        `json:"previousBalance"`
	NewBalance      decimal.Decimal        `json:"newBalance"`
	Explanation     string                 `json:"explanation"`
	Successful      bool                   `json:"successful"`
	CreatedAt       time.Time              `json:"createdAt"`
	InterestRate    *decimal.Decimal       `json:"interestRate,omitempty"`
}

func newProcessResponse(r *service.ProcessResult) ProcessResponse {
	t := r.Transaction
	return ProcessResponse{
		TransactionCode: t.Code,
		AccountNo:       t.AccountNo,
		CustomerID:      t.CustomerID,
		TransactionType: t.Type,
		Amount:          t.Amount,
		PreviousBalance: t.PreviousBalance,
		NewBalance:      t.NewBalance,
		Explanation:     t.Explanation,
		Successful:      t.Successful,
		CreatedAt:       t.CreatedAt,
		InterestRate:    r.InterestRate,
	}
}

type BalanceResponse struct {
	AccountNo  string          `json:"accountNo"`
	CustomerID int64           `json:"customerId"`
	Balance    decimal.Decimal `json:"balance"`
}
