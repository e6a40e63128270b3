package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"ads-firewall/internal/cli"
)

// main runs the ads-firewall command line. The first termination signal
// cancels the command context; the running command finishes its current
// unit of work and the process exits with 128+signal. A second signal kills
// the process outright.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var caught atomic.Value
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go awaitSignal(ctx, quit, cancel, func() { signal.Stop(quit) }, &caught)

	exitCode := 0
	if err := cli.NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		exitCode = 1
	}
	if sig, ok := caught.Load().(syscall.Signal); ok {
		exitCode = 128 + int(sig)
	}

	cancel()
	os.Exit(exitCode)
}

// awaitSignal stores the first signal received on quit and cancels the
// command. release restores the default signal action before cancelling,
// so a repeated signal is not swallowed while shutdown is in progress.
func awaitSignal(ctx context.Context, quit <-chan os.Signal, cancel context.CancelFunc, release func(), caught *atomic.Value) {
	select {
	case sig := <-quit:
		caught.Store(sig)
		release()
		cancel()
	case <-ctx.Done():
	}
}
