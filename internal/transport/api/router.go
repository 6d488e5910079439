package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-bank/internal/metrics"
	"github.com/fsdevblog/groph-bank/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	CustomersRoute = "/customers"
	CustomerRoute  = "/customers/:id"

	AccountsRoute         = "/accounts"
	AccountRoute          = "/accounts/:no"
	CustomerAccountsRoute = "/accounts/customer/:id"
	AccountDepositRoute   = "/accounts/:no/deposit"
	AccountWithdrawRoute  = "/accounts/:no/withdraw"
	AccountInterestRoute  = "/accounts/:no/interest"

	DepositMoneyRoute   = "/processes/deposit-money"
	WithdrawMoneyRoute  = "/processes/withdraw-money"
	InterestEarnRoute   = "/processes/interest-earn/:no"
	AmountRoute         = "/processes/amount/:no"
	AccountHistoryRoute = "/processes/account-history/:no"

	HealthRoute  = "/health"
	MetricsRoute = "/metrics"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	Metrics         *metrics.HTTP
	Gatherer        prometheus.Gatherer
	CustomerService CustomerServicer
	AccountService  AccountServicer
	ProcessService  ProcessServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("api router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if args.Metrics != nil {
		r.Use(middlewares.Metrics(args.Metrics))
	}
	r.Use(middlewares.Errors())

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	if args.Gatherer != nil {
		r.GET(MetricsRoute, gin.WrapH(promhttp.HandlerFor(args.Gatherer, promhttp.HandlerOpts{})))
	}

	customersHandler := NewCustomersHandler(args.CustomerService)
	accountsHandler := NewAccountsHandler(args.AccountService)
	processesHandler := NewProcessesHandler(args.ProcessService)

	api := r.Group(RouteGroup)

	api.POST(CustomersRoute, customersHandler.Create)
	api.GET(CustomersRoute, customersHandler.Index)
	api.GET(CustomerRoute, customersHandler.Show)
	api.PUT(CustomerRoute, customersHandler.Update)
	api.DELETE(CustomerRoute, customersHandler.Delete)

	api.POST(AccountsRoute, accountsHandler.Create)
	api.GET(AccountsRoute, accountsHandler.Index)
	api.GET(AccountRoute, accountsHandler.Show)
	api.GET(CustomerAccountsRoute, accountsHandler.ByCustomer)
	api.DELETE(AccountRoute, accountsHandler.Close)
	api.POST(AccountDepositRoute, accountsHandler.Deposit)
	api.POST(AccountWithdrawRoute, accountsHandler.Withdraw)
	api.POST(AccountInterestRoute, accountsHandler.Interest)

	api.POST(DepositMoneyRoute, processesHandler.DepositMoney)
	api.POST(WithdrawMoneyRoute, processesHandler.WithdrawMoney)
	api.POST(InterestEarnRoute, processesHandler.EarnInterest)
	api.GET(AmountRoute, processesHandler.Amount)
	api.GET(AccountHistoryRoute, processesHandler.AccountHistory)

	return r, nil
}
