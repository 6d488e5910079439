package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-bank/internal/config"
	"github.com/fsdevblog/groph-bank/internal/events"
	"github.com/fsdevblog/groph-bank/internal/metrics"
	"github.com/fsdevblog/groph-bank/internal/notify"
	"github.com/fsdevblog/groph-bank/internal/transport/customerclient"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const notifierClientID = "notification"

type NotifierApp struct {
	Config *config.NotifierConfig
	Logger *logrus.Logger
}

func NewNotifier(conf *config.NotifierConfig, l *logrus.Logger) *NotifierApp {
	return &NotifierApp{
		Config: conf,
		Logger: l,
	}
}

func (a *NotifierApp) Run() error {
	notifyCtx, stop := notifyContext()
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"kafka":   a.Config.KafkaBrokers,
		"metrics": a.Config.MetricsAddress,
		"email":   a.Config.EmailEnabled(),
	}).Info("Starting notification service")

	reg := newRegistry()
	eventMetrics := metrics.NewEvents(reg)
	brokers := a.Config.KafkaBrokerList()

	dlq, producerErr := events.NewKafkaProducer(brokers, notifierClientID, a.Logger)
	if producerErr != nil {
		return fmt.Errorf("app run: %s", producerErr.Error())
	}
	defer func() {
		if closeErr := dlq.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close producer")
		}
	}()

	notifications, nErr := events.NewConsumer(
		brokers,
		notifierClientID,
		events.GroupNotification,
		[]string{events.TopicTransactionEvents},
		events.NewNotificationHandler(a.initNotifier(), dlq, eventMetrics, a.Logger),
		a.Logger,
	)
	if nErr != nil {
		return fmt.Errorf("app run: %s", nErr.Error())
	}
	defer a.closeConsumer(notifications)

	deadLetters, dErr := events.NewConsumer(
		brokers,
		notifierClientID,
		events.GroupDeadLetter,
		[]string{events.TopicTransactionEventsDLQ},
		events.NewDeadLetterHandler(eventMetrics, a.Logger),
		a.Logger,
	)
	if dErr != nil {
		return fmt.Errorf("app run: %s", dErr.Error())
	}
	defer a.closeConsumer(deadLetters)

	errChan := make(chan error, 2) //nolint:mnd
	for _, consumer := range []*events.Consumer{notifications, deadLetters} {
		go func() {
			if runErr := consumer.Run(notifyCtx); runErr != nil && !errors.Is(runErr, context.Canceled) {
				errChan <- runErr
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serve(notifyCtx, a.Config.MetricsAddress, newStatusRouter(reg), a.Logger)
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("app run: %w", err)
	case err := <-serveErr:
		return err
	}
}

// initNotifier уведомления всегда пишутся в лог, письма отправляются если настроен SMTP.
func (a *NotifierApp) initNotifier() events.Notifier {
	notifiers := notify.Multi{notify.NewLogNotifier(a.Logger)}
	if !a.Config.EmailEnabled() {
		return notifiers
	}

	customers := customerclient.NewBreaker(
		customerclient.New(a.Config.CustomerServiceURL, customerclient.DefaultTimeout),
		customerclient.FailFast{},
		customerclient.DefaultBreakerSettings,
		a.Logger,
	)
	return append(notifiers, notify.NewEmailNotifier(notify.SMTPConfig{
		Host:     a.Config.SMTPHost,
		Port:     a.Config.SMTPPort,
		Username: a.Config.SMTPUsername,
		Password: a.Config.SMTPPassword,
		From:     a.Config.SMTPFrom,
	}, customers))
}

func (a *NotifierApp) closeConsumer(consumer *events.Consumer) {
	if err := consumer.Close(); err != nil {
		a.Logger.WithError(err).Error("close consumer")
	}
}

// newStatusRouter health и метрики сервиса без http api.
func newStatusRouter(gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return r
}
