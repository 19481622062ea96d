// Command graphplay traces, lays out and animates graph traversals.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(ctx, version).Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}
