// Package signal provides utilities for handling OS signals in a graceful manner.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	log "waterbar/internal/logging"
)

// RunWithContext calls action with a context that is cancelled on SIGINT or
// SIGTERM, and returns once action does. The process is not exited.
func RunWithContext(action func(context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info("shutting down", zap.Stringer("signal", sig))
			cancel()
		case <-ctx.Done():
		}
	}()

	action(ctx)
}
