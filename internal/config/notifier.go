package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

type NotifierConfig struct {
	KafkaBrokers string `env:"KAFKA_BROKERS"`
	// MetricsAddress адрес http сервера с /metrics и /health.
	MetricsAddress     string `env:"METRICS_ADDRESS"`
	CustomerServiceURL string `env:"CUSTOMER_SERVICE_URL"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
}

func (c *NotifierConfig) KafkaBrokerList() []string {
	return splitList(c.KafkaBrokers)
}

// EmailEnabled письма отправляются только если задан SMTP сервер.
func (c *NotifierConfig) EmailEnabled() bool {
	return c.SMTPHost != ""
}

func LoadNotifierConfig(args []string) (*NotifierConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var flagsConfig, envConfig NotifierConfig

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadNotifierFlags(&flagsConfig, args); flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeNotifierConfig(&envConfig, &flagsConfig)
	if len(conf.KafkaBrokerList()) == 0 {
		return nil, errors.New("kafka brokers are not set")
	}
	if conf.EmailEnabled() && conf.SMTPFrom == "" {
		return nil, errors.New("smtp sender address is not set")
	}
	return conf, nil
}

func MustLoadNotifierConfig() *NotifierConfig {
	return mustLoad(LoadNotifierConfig, os.Args[1:])
}

func loadNotifierFlags(flagConfig *NotifierConfig, args []string) error {
	fs := flag.NewFlagSet("notifier", flag.ContinueOnError)
	fs.StringVar(&flagConfig.KafkaBrokers, "k", "localhost:9092", "Kafka brokers, comma separated")
	fs.StringVar(&flagConfig.MetricsAddress, "a", "localhost:9091", "Metrics address in format host:port")
	fs.StringVar(&flagConfig.CustomerServiceURL, "c", "http://localhost:8080", "Customer service base URL")
	fs.StringVar(&flagConfig.SMTPHost, "smtp-host", "", "SMTP host, empty disables e-mail notifications")
	fs.IntVar(&flagConfig.SMTPPort, "smtp-port", 587, "SMTP port")
	fs.StringVar(&flagConfig.SMTPUsername, "smtp-username", "", "SMTP username")
	fs.StringVar(&flagConfig.SMTPPassword, "smtp-password", "", "SMTP password")
	fs.StringVar(&flagConfig.SMTPFrom, "smtp-from", "", "Sender address")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func mergeNotifierConfig(envConfig, flagsConfig *NotifierConfig) *NotifierConfig {
	return &NotifierConfig{
		KafkaBrokers:       defaultIfBlank(envConfig.KafkaBrokers, flagsConfig.KafkaBrokers),
		MetricsAddress:     defaultIfBlank(envConfig.MetricsAddress, flagsConfig.MetricsAddress),
		CustomerServiceURL: defaultIfBlank(envConfig.CustomerServiceURL, flagsConfig.CustomerServiceURL),
		SMTPHost:           defaultIfBlank(envConfig.SMTPHost, flagsConfig.SMTPHost),
		SMTPPort:           defaultIfZero(envConfig.SMTPPort, flagsConfig.SMTPPort),
		SMTPUsername:       defaultIfBlank(envConfig.SMTPUsername, flagsConfig.SMTPUsername),
		SMTPPassword:       defaultIfBlank(envConfig.SMTPPassword, flagsConfig.SMTPPassword),
		SMTPFrom:           defaultIfBlank(envConfig.SMTPFrom, flagsConfig.SMTPFrom),
	}
}
