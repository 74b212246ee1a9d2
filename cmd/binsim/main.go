package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	nuts "github.com/vaudience/go-nuts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		nuts.L.Errorf("[binsim] %v", err)
		stop()
		os.Exit(1)
	}
}
