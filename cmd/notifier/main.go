package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/groph-bank/internal/logger"

	"github.com/fsdevblog/groph-bank/internal/app"
	"github.com/fsdevblog/groph-bank/internal/config"
)

func main() {
	conf := config.MustLoadNotifierConfig()
	l := logger.New(os.Stdout, "notification")

	if err := app.NewNotifier(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
