package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-bank/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountsHandler struct {
	svs AccountServicer
}

func NewAccountsHandler(svs AccountServicer) *AccountsHandler {
	return &AccountsHandler{svs: svs}
}

// Create POST RouteGroup + AccountsRoute. Открывает счет клиенту.
func (h *AccountsHandler) Create(c *gin.Context) {
	var params OpenAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.Open(ctx, service.OpenAccountArgs{
		CustomerID:     params.CustomerID,
		Kind:           params.Kind,
		FirstAmount:    params.FirstAmount,
		InterestRate:   params.InterestRate,
		MaturityMonths: params.MaturityMonths,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAccountResponse(account))
}

// Index GET RouteGroup + AccountsRoute.
func (h *AccountsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	accounts, err := h.svs.List(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountsResponse(accounts))
}

// Show GET RouteGroup + AccountRoute.
func (h *AccountsHandler) Show(c *gin.Context) {
	var uri accountURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.Get(ctx, uri.No)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

// ByCustomer GET RouteGroup + CustomerAccountsRoute.
func (h *AccountsHandler) ByCustomer(c *gin.Context) {
	var uri customerURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	accounts, err := h.svs.ListByCustomer(ctx, uri.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountsResponse(accounts))
}

// Close DELETE RouteGroup + AccountRoute. Счет не удаляется, а переводится в неактивное состояние.
func (h *AccountsHandler) Close(c *gin.Context) {
	var uri accountURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Close(ctx, uri.No); err != nil {
		abortWithError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// Deposit POST RouteGroup + AccountDepositRoute.
func (h *AccountsHandler) Deposit(c *gin.Context) {
	h.mutate(c, h.svs.Deposit)
}

// Withdraw POST RouteGroup + AccountWithdrawRoute.
func (h *AccountsHandler) Withdraw(c *gin.Context) {
	h.mutate(c, h.svs.Withdraw)
}

// Interest POST RouteGroup + AccountInterestRoute.
func (h *AccountsHandler) Interest(c *gin.Context) {
	var uri accountURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	op, err := h.svs.AccrueInterest(ctx, uri.No)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(op.Account))
}

type moneyOperation func(
	ctx context.Context,
	no string,
	amount decimal.Decimal,
	explanation string,
) (*service.AccountOperation, error)

func (h *AccountsHandler) mutate(c *gin.Context, operation moneyOperation) {
	var uri accountURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	var params MoneyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	op, err := operation(ctx, uri.No, params.Amount, params.Explanation)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(op.Account))
}
