package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogProducer продюсер без брокера, сообщения только пишутся в лог.
type LogProducer struct {
	l *logrus.Entry
}

func NewLogProducer(l *logrus.Logger) *LogProducer {
	return &LogProducer{
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "log_producer",
		}),
	}
}

func (p *LogProducer) Publish(_ context.Context, topic string, key string, value []byte) error {
	p.l.WithFields(logrus.Fields{
		"topic": topic,
		"key":   key,
		"size":  len(value),
	}).Info("message published without broker")
	return nil
}
