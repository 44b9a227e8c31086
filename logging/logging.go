package logging

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Setup replaces the process logger with a production JSON logger.
// The returned func flushes it.
func Setup(debug bool) (func() error, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "could not build logger")
	}
	Use(logger)
	return func() error {
		// stderr sync fails on some terminals
		_ = logger.Sync()
		return nil
	}, nil
}

// Use installs logger as the process logger. Tests use it with zaptest observers.
func Use(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = logger
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
