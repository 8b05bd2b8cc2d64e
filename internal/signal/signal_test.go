package signal

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunWithContextCancelsOnSignal(t *testing.T) {
	var cancelled bool
	RunWithContext(func(ctx context.Context) {
		if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
			t.Fatalf("kill: %v", err)
		}
		select {
		case <-ctx.Done():
			cancelled = true
		case <-time.After(2 * time.Second):
		}
	})
	assert.True(t, cancelled, "context should be cancelled by SIGTERM")
}

func TestRunWithContextReturnsWithAction(t *testing.T) {
	var seen context.Context
	RunWithContext(func(ctx context.Context) {
		seen = ctx
		assert.NoError(t, ctx.Err())
	})
	assert.Error(t, seen.Err(), "context is released once the action returns")
}
