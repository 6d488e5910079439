package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type BankConfig struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	// KafkaBrokers адреса брокеров через запятую. Если не заданы, события только логируются.
	KafkaBrokers   string `env:"KAFKA_BROKERS"`
	EventWorkers   uint   `env:"EVENT_WORKERS"`
	EventQueueSize uint   `env:"EVENT_QUEUE_SIZE"`
	// RedisAddress если задан, кеш счетов хранится в redis, иначе в памяти процесса.
	RedisAddress string        `env:"REDIS_ADDRESS"`
	CacheSize    int           `env:"CACHE_SIZE"`
	CacheTTL     time.Duration `env:"CACHE_TTL"`
	// CustomerServiceURL если задан, клиенты проверяются через удаленный сервис клиентов.
	CustomerServiceURL     string        `env:"CUSTOMER_SERVICE_URL"`
	CustomerServiceTimeout time.Duration `env:"CUSTOMER_SERVICE_TIMEOUT"`
}

func (c *BankConfig) KafkaBrokerList() []string {
	return splitList(c.KafkaBrokers)
}

func LoadBankConfig(args []string) (*BankConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var flagsConfig, envConfig BankConfig

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadBankFlags(&flagsConfig, args); flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeBankConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	return conf, nil
}

func MustLoadBankConfig() *BankConfig {
	return mustLoad(LoadBankConfig, os.Args[1:])
}

func loadBankFlags(flagConfig *BankConfig, args []string) error {
	fs := flag.NewFlagSet("bank", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.KafkaBrokers, "k", "", "Kafka brokers, comma separated")
	fs.UintVar(&flagConfig.EventWorkers, "event-workers", 4, "Number of event publishing workers")
	fs.UintVar(&flagConfig.EventQueueSize, "event-queue", 1024, "Event queue size")
	fs.StringVar(&flagConfig.RedisAddress, "r", "", "Redis address for account cache")
	fs.IntVar(&flagConfig.CacheSize, "cache-size", 1024, "In-memory cache size per region")
	fs.DurationVar(&flagConfig.CacheTTL, "cache-ttl", 10*time.Minute, "Account cache TTL")
	fs.StringVar(&flagConfig.CustomerServiceURL, "c", "", "Remote customer service base URL")
	fs.DurationVar(&flagConfig.CustomerServiceTimeout, "customer-timeout", 5*time.Second,
		"Remote customer service request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func mergeBankConfig(envConfig, flagsConfig *BankConfig) *BankConfig {
	return &BankConfig{
		RunAddress:             defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:            defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:          defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		KafkaBrokers:           defaultIfBlank(envConfig.KafkaBrokers, flagsConfig.KafkaBrokers),
		EventWorkers:           defaultIfZero(envConfig.EventWorkers, flagsConfig.EventWorkers),
		EventQueueSize:         defaultIfZero(envConfig.EventQueueSize, flagsConfig.EventQueueSize),
		RedisAddress:           defaultIfBlank(envConfig.RedisAddress, flagsConfig.RedisAddress),
		CacheSize:              defaultIfZero(envConfig.CacheSize, flagsConfig.CacheSize),
		CacheTTL:               defaultIfZero(envConfig.CacheTTL, flagsConfig.CacheTTL),
		CustomerServiceURL:     defaultIfBlank(envConfig.CustomerServiceURL, flagsConfig.CustomerServiceURL),
		CustomerServiceTimeout: defaultIfZero(envConfig.CustomerServiceTimeout, flagsConfig.CustomerServiceTimeout),
	}
}
