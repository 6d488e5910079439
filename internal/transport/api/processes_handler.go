package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProcessesHandler операции над счетами в терминах журнала транзакций.
type ProcessesHandler struct {
	svs ProcessServicer
}

func NewProcessesHandler(svs ProcessServicer) *ProcessesHandler {
	return &ProcessesHandler{svs: svs}
}

// DepositMoney POST RouteGroup + DepositMoneyRoute.
func (h *ProcessesHandler) DepositMoney(c *gin.Context) {
	var params ProcessParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.svs.DepositMoney(ctx, params.AccountNo, params.Amount, params.Explanation)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProcessResponse(res))
}

// WithdrawMoney POST RouteGroup + WithdrawMoneyRoute.
func (h *ProcessesHandler) WithdrawMoney(c *gin.Context) {
	var params ProcessParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.svs.WithdrawMoney(ctx, params.AccountNo, params.Amount, params.Explanation)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProcessResponse(res))
}

// EarnInterest POST RouteGroup + InterestEarnRoute.
func (h *ProcessesHandler) EarnInterest(c *gin.Context) {
	var uri accountURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.svs.EarnInterest(ctx, uri.No)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProcessResponse(res))
}

// Amount GET RouteGroup + AmountRoute.
func (h *ProcessesHandler) Amount(c *gin.Context) {
	var uri accountURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.svs.Amount(ctx, uri.No)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{
		AccountNo:  view.AccountNo,
		CustomerID: view.CustomerID,
		Balance:    view.Balance,
	})
}

// AccountHistory GET RouteGroup + AccountHistoryRoute. Операции отсортированы в порядке проведения.
func (h *ProcessesHandler) AccountHistory(c *gin.Context) {
	var uri accountURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	results, err := h.svs.AccountHistory(ctx, uri.No)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]ProcessResponse, len(results))
	for i := range results {
		response[i] = newProcessResponse(&results[i])
	}
	c.JSON(http.StatusOK, response)
}
