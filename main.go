package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Snider/finanza-launcher/cmd"
	"github.com/Snider/finanza-launcher/pkg/logger"
)

var osExit = os.Exit

func main() {
	Main()
}

func Main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(false)
	if err := cmd.Execute(ctx, log); err != nil {
		log.Error("fatal error", "err", err)
		stop()
		osExit(1)
	}
}
