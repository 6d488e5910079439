package app

import (
	"fmt"

	"github.com/fsdevblog/groph-bank/internal/cache"
	"github.com/fsdevblog/groph-bank/internal/config"
	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/events"
	"github.com/fsdevblog/groph-bank/internal/metrics"
	"github.com/fsdevblog/groph-bank/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/internal/service"
	"github.com/fsdevblog/groph-bank/internal/transport/api"
	"github.com/fsdevblog/groph-bank/internal/transport/customerclient"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const bankClientID = "bank"

type BankApp struct {
	Config *config.BankConfig
	Logger *logrus.Logger
}

func NewBank(conf *config.BankConfig, l *logrus.Logger) *BankApp {
	return &BankApp{
		Config: conf,
		Logger: l,
	}
}

func (a *BankApp) Run() error {
	notifyCtx, stop := notifyContext()
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":      a.Config.RunAddress,
		"kafka":        a.Config.KafkaBrokers,
		"redis":        a.Config.RedisAddress,
		"customersUrl": a.Config.CustomerServiceURL,
	}).Info("Starting bank service")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	reg := newRegistry()

	producer, closeProducer, producerErr := a.initProducer()
	if producerErr != nil {
		return fmt.Errorf("app run: %s", producerErr.Error())
	}
	defer closeProducer()

	dispatcher := events.NewDispatcher(producer, a.Logger).
		SetWorkers(a.Config.EventWorkers).
		SetQueueSize(a.Config.EventQueueSize).
		SetMetrics(metrics.NewEvents(reg))
	dispatcher.Start(notifyCtx)
	// закрываем до продюсера: воркеры дочитывают очередь
	defer dispatcher.Close()

	accountCache, listCache, closeCache := a.initCaches()
	defer closeCache()

	services, sErr := service.Factory(notifyCtx, service.FactoryArgs{
		UOW:            unitOfWork,
		CustomerLookup: a.initCustomerLookup(),
		Publisher:      dispatcher,
		AccountCache:   accountCache,
		ListCache:      listCache,
		Logger:         a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:          a.Logger,
		Metrics:         metrics.NewHTTP(reg, bankClientID),
		Gatherer:        reg,
		CustomerService: services.CustomerService,
		AccountService:  services.AccountService,
		ProcessService:  services.ProcessService,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	return serve(notifyCtx, a.Config.RunAddress, router, a.Logger)
}

// initProducer без брокеров события только пишутся в лог.
func (a *BankApp) initProducer() (events.Producer, func(), error) {
	brokers := a.Config.KafkaBrokerList()
	if len(brokers) == 0 {
		a.Logger.Warn("kafka brokers are not configured, events will be logged only")
		return events.NewLogProducer(a.Logger), func() {}, nil
	}
	producer, err := events.NewKafkaProducer(brokers, bankClientID, a.Logger)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	return producer, func() {
		if closeErr := producer.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close producer")
		}
	}, nil
}

func (a *BankApp) initCaches() (service.AccountCache, service.AccountListCache, func()) {
	if a.Config.RedisAddress == "" {
		return cache.NewLRU[domain.Account](a.Config.CacheSize, a.Config.CacheTTL),
			cache.NewLRU[[]domain.Account](a.Config.CacheSize, a.Config.CacheTTL),
			func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddress})
	return cache.NewRedis[domain.Account](client, cache.RegionAccount, a.Config.CacheTTL, a.Logger),
		cache.NewRedis[[]domain.Account](client, cache.RegionCustomerAccounts, a.Config.CacheTTL, a.Logger),
		func() {
			if err := client.Close(); err != nil {
				a.Logger.WithError(err).Error("close redis client")
			}
		}
}

// initCustomerLookup nil означает поиск клиентов в локальной базе.
func (a *BankApp) initCustomerLookup() service.CustomerLookup {
	if a.Config.CustomerServiceURL == "" {
		return nil
	}
	return customerclient.NewBreaker(
		customerclient.New(a.Config.CustomerServiceURL, a.Config.CustomerServiceTimeout),
		customerclient.FailFast{},
		customerclient.DefaultBreakerSettings,
		a.Logger,
	)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.CustomerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCustomerRepository(dbtx)
		},
		repoargs.AccountRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAccountRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
