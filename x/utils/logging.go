package utils

import (
	"time"

	"go.uber.org/zap"

	"github.com/plait-network/plait"
)

// Logging is a decorator to log messages as they pass through the stack.
type Logging struct{}

var _ plait.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug.
func (l Logging) Check(ctx plait.Context, store plait.KVStore, tx plait.Tx, next plait.Checker) (plait.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	logCall(ctx, plait.GetPath(tx), start, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info.
func (l Logging) Deliver(ctx plait.Context, store plait.KVStore, tx plait.Tx, next plait.Deliverer) (plait.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	logCall(ctx, plait.GetPath(tx), start, err, false)
	return res, err
}

// logCall writes information about the timing and result of a single
// call to the context logger.
func logCall(ctx plait.Context, path string, start time.Time, err error, lowPrio bool) {
	logger := plait.GetLogger(ctx).With(
		zap.String("path", path),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case err != nil && lowPrio:
		logger.Info("check failed", zap.Error(err))
	case err != nil:
		logger.Error("delivery failed", zap.Error(err))
	case lowPrio:
		logger.Debug("check succeeded")
	default:
		logger.Info("delivered")
	}
}
