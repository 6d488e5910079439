package app

import (
	"fmt"

	"github.com/fsdevblog/groph-bank/internal/config"
	"github.com/fsdevblog/groph-bank/internal/metrics"
	"github.com/fsdevblog/groph-bank/internal/transport/gateway"
	"github.com/fsdevblog/groph-bank/internal/transport/gateway/middlewares"
	"github.com/sirupsen/logrus"
)

const gatewayClientID = "gateway"

type GatewayApp struct {
	Config *config.GatewayConfig
	Logger *logrus.Logger
}

func NewGateway(conf *config.GatewayConfig, l *logrus.Logger) *GatewayApp {
	return &GatewayApp{
		Config: conf,
		Logger: l,
	}
}

func (a *GatewayApp) Run() error {
	notifyCtx, stop := notifyContext()
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":   a.Config.RunAddress,
		"customers": a.Config.CustomersURL,
		"accounts":  a.Config.AccountsURL,
		"processes": a.Config.ProcessesURL,
	}).Info("Starting gateway")

	users, usersErr := gateway.NewUserStore(a.Config.UserList())
	if usersErr != nil {
		return fmt.Errorf("app run: %s", usersErr.Error())
	}

	proxy, proxyErr := gateway.NewProxy(gateway.Upstreams{
		Customers: a.Config.CustomersURL,
		Accounts:  a.Config.AccountsURL,
		Processes: a.Config.ProcessesURL,
	}, a.Logger)
	if proxyErr != nil {
		return fmt.Errorf("app run: %s", proxyErr.Error())
	}

	limiter := middlewares.NewIPRateLimiter(a.Config.RateLimitRPS, a.Config.RateLimitBurst)
	go limiter.Run(notifyCtx)

	reg := newRegistry()
	router := gateway.New(gateway.RouterArgs{
		Logger:         a.Logger,
		Metrics:        metrics.NewHTTP(reg, gatewayClientID),
		Gatherer:       reg,
		Users:          users,
		Proxy:          proxy,
		RateLimiter:    limiter,
		PublicPrefixes: a.Config.PublicPathList(),
		AllowOrigins:   a.Config.AllowOriginList(),
		JWTSecretKey:   []byte(a.Config.JWTSecret),
		TokenTTL:       a.Config.TokenTTL,
	})

	return serve(notifyCtx, a.Config.RunAddress, router, a.Logger)
}
