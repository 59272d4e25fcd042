// pkg/extension/cleanup.go
package extension

import (
	"fmt"

	"go.uber.org/zap"
)

// Cleanup undoes whatever an extension set up when it ran
type Cleanup func() error

// Combine returns one callback that runs every cleanup in order. Errors and
// panics from individual cleanups are logged and swallowed so the remaining
// cleanups still run. Nil entries are skipped.
func Combine(cleanups []Cleanup, logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	list := append([]Cleanup(nil), cleanups...)

	return func() {
		for i, c := range list {
			if c == nil {
				continue
			}
			if err := runIsolated(c); err != nil {
				logger.Warn("extension cleanup failed", zap.Int("index", i), zap.Error(err))
			}
		}
	}
}

func runIsolated(c Cleanup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c()
}
