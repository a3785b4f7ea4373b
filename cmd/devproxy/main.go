package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"housing/internal/app/devproxy"
	"housing/internal/app/devproxy/config"
	"housing/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := devproxy.New(conf, log)
	if err != nil {
		log.Error("init failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("dev proxy stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}
