package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/newsdesk-hq/hn-headlines/internal/app"
	"github.com/newsdesk-hq/hn-headlines/internal/config"
	"github.com/newsdesk-hq/hn-headlines/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runtime, err := app.New(cfg, log, nil, os.Stdout)
	if err != nil {
		log.ErrorObj("failed to initialize app", "error", err)
		return err
	}

	return runtime.Run(ctx)
}
