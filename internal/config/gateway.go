package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type GatewayConfig struct {
	RunAddress string `env:"RUN_ADDRESS"`
	JWTSecret  string `env:"JWT_SECRET"`
	// TokenTTL время жизни выданного токена.
	TokenTTL time.Duration `env:"JWT_TTL"`
	// Users пользователи в формате name:password[:role] через запятую.
	Users       string `env:"GATEWAY_USERS"`
	PublicPaths string `env:"PUBLIC_PATHS"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`
	AllowOrigins   string  `env:"CORS_ALLOW_ORIGINS"`

	// BankURL адрес по умолчанию для всех сервисов.
	BankURL      string `env:"BANK_URL"`
	CustomersURL string `env:"CUSTOMERS_URL"`
	AccountsURL  string `env:"ACCOUNTS_URL"`
	ProcessesURL string `env:"PROCESSES_URL"`
}

func (c *GatewayConfig) UserList() []string {
	return splitList(c.Users)
}

func (c *GatewayConfig) PublicPathList() []string {
	return splitList(c.PublicPaths)
}

func (c *GatewayConfig) AllowOriginList() []string {
	return splitList(c.AllowOrigins)
}

func LoadGatewayConfig(args []string) (*GatewayConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var flagsConfig, envConfig GatewayConfig

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadGatewayFlags(&flagsConfig, args); flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeGatewayConfig(&envConfig, &flagsConfig)
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if len(conf.UserList()) == 0 {
		return nil, errors.New("gateway users are not set")
	}
	return conf, nil
}

func MustLoadGatewayConfig() *GatewayConfig {
	return mustLoad(LoadGatewayConfig, os.Args[1:])
}

func loadGatewayFlags(flagConfig *GatewayConfig, args []string) error {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8000", "Run address in format host:port")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	fs.DurationVar(&flagConfig.TokenTTL, "jwt-ttl", 24*time.Hour, "JWT lifetime")
	fs.StringVar(&flagConfig.Users, "users", "admin:admin123,user:user123", "Users name:password[:role], comma separated")
	fs.StringVar(&flagConfig.PublicPaths, "public", "/api/auth/,/metrics", "Public path prefixes, comma separated")
	fs.Float64Var(&flagConfig.RateLimitRPS, "rps", 10, "Requests per second per client ip")
	fs.IntVar(&flagConfig.RateLimitBurst, "burst", 20, "Rate limit burst per client ip")
	fs.StringVar(&flagConfig.AllowOrigins, "cors", "", "Allowed CORS origins, empty allows all")
	fs.StringVar(&flagConfig.BankURL, "b", "http://localhost:8080", "Bank API base URL")
	fs.StringVar(&flagConfig.CustomersURL, "customers-url", "", "Customer service URL, defaults to bank URL")
	fs.StringVar(&flagConfig.AccountsURL, "accounts-url", "", "Account service URL, defaults to bank URL")
	fs.StringVar(&flagConfig.ProcessesURL, "processes-url", "", "Process service URL, defaults to bank URL")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func mergeGatewayConfig(envConfig, flagsConfig *GatewayConfig) *GatewayConfig {
	bankURL := defaultIfBlank(envConfig.BankURL, flagsConfig.BankURL)
	return &GatewayConfig{
		RunAddress:     defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		JWTSecret:      defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		TokenTTL:       defaultIfZero(envConfig.TokenTTL, flagsConfig.TokenTTL),
		Users:          defaultIfBlank(envConfig.Users, flagsConfig.Users),
		PublicPaths:    defaultIfBlank(envConfig.PublicPaths, flagsConfig.PublicPaths),
		RateLimitRPS:   defaultIfZero(envConfig.RateLimitRPS, flagsConfig.RateLimitRPS),
		RateLimitBurst: defaultIfZero(envConfig.RateLimitBurst, flagsConfig.RateLimitBurst),
		AllowOrigins:   defaultIfBlank(envConfig.AllowOrigins, flagsConfig.AllowOrigins),
		BankURL:        bankURL,
		CustomersURL:   defaultIfBlank(envConfig.CustomersURL, defaultIfBlank(flagsConfig.CustomersURL, bankURL)),
		AccountsURL:    defaultIfBlank(envConfig.AccountsURL, defaultIfBlank(flagsConfig.AccountsURL, bankURL)),
		ProcessesURL:   defaultIfBlank(envConfig.ProcessesURL, defaultIfBlank(flagsConfig.ProcessesURL, bankURL)),
	}
}
