package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"real-estate-go/internal/cli"
	"real-estate-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()
	log.Debug("app: starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCmd(log).ExecuteContext(ctx)
	switch {
	case err == nil:
		log.Debug("app: stopped")
	case errors.Is(err, context.Canceled):
		log.Info("app: shutdown signal received")
	default:
		log.Critical("app: command failed", "err", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
