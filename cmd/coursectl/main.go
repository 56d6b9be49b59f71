package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/courseapproval/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		logger.Debug().Err(err).Msg("coursectl exited with error")
		os.Exit(1)
	}
}
