// Package logging holds the process logger. The terminal belongs to the
// progress bar, so log lines only ever go to a file.
//
// Packages log through the helpers here with zap fields:
//
//	log.Debug("phase changed", zap.Stringer("from", from), zap.Stringer("to", to))
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// MaxSize is the size at which an existing log file is rotated on startup.
const MaxSize = 10 * 1024 * 1024

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Setup installs the process logger. With debug set it writes development
// format lines to path, rotating an oversized file first; otherwise every
// line is dropped. The standard library logger is redirected to the same
// place. The returned func flushes the logger and undoes the redirection.
func Setup(debug bool, path string) (*zap.Logger, func(), error) {
	logger := zap.NewNop()
	if debug {
		var err error
		if logger, err = fileLogger(path); err != nil {
			return nil, nil, err
		}
	}

	previous := current.Swap(logger)
	restoreStd := zap.RedirectStdLog(logger)
	return logger, func() {
		_ = logger.Sync()
		restoreStd()
		current.Store(previous)
	}, nil
}

func fileLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := rotate(path, time.Now()); err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// rotate moves path aside with a timestamp suffix once it reaches MaxSize.
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	if info.Size() < MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), now.Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return nil
}

// L returns the installed logger.
func L() *zap.Logger {
	return current.Load()
}

// Debug logs at debug level.
func Debug(msg string, fields ...zap.Field) {
	current.Load().Debug(msg, fields...)
}

// Info logs at info level.
func Info(msg string, fields ...zap.Field) {
	current.Load().Info(msg, fields...)
}

// Warn logs at warn level.
func Warn(msg string, fields ...zap.Field) {
	current.Load().Warn(msg, fields...)
}

// Error logs at error level.
func Error(msg string, fields ...zap.Field) {
	current.Load().Error(msg, fields...)
}
