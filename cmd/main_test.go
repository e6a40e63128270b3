package main

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitSignalReleasesHandlerAndCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	var (
		caught   atomic.Value
		released atomic.Bool
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		awaitSignal(ctx, quit, cancel, func() {
			released.Store(true)
			// the command must still be running when the handler is released
			assert.NoError(t, ctx.Err())
		}, &caught)
	}()

	quit <- syscall.SIGTERM
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("signal not handled")
	}

	assert.True(t, released.Load())
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, syscall.SIGTERM, caught.Load())
}

func TestAwaitSignalReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	var caught atomic.Value

	done := make(chan struct{})
	go func() {
		defer close(done)
		awaitSignal(ctx, quit, cancel, func() { t.Error("released without a signal") }, &caught)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("awaitSignal did not return after cancel")
	}
	assert.Nil(t, caught.Load())
}
