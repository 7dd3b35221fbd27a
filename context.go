package plait

import (
	"context"

	"go.uber.org/zap"

	"github.com/plait-network/plait/errors"
)

// Context is just a type alias for the standard implementation. We use the
// context to pass call metadata (ledger height, logger, authentication
// conditions) between the application, middleware, and handlers.
//
// For every value XYZ of type T we want to support there exist two
// functions:
//
//	WithXYZ(Context, T) Context
//	GetXYZ(Context) (val T, ok bool)
//
// WithXYZ panics if the value was previously set, to stop lower-level
// modules from overwriting call metadata assigned by the host.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyLogger
)

// WithHeight sets the ledger sequence number for the call. It panics when
// the height was already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current ledger sequence number if the host
// assigned one.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// MustHeight reads the ledger sequence number, failing with a coding error
// when the host did not set it. Every expiry check needs the height, so
// a missing value is a wiring mistake, not user input.
func MustHeight(ctx Context) (int64, error) {
	height, ok := GetHeight(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "ledger height not set")
	}
	return height, nil
}

// WithLogger attaches a structured logger to the context.
func WithLogger(ctx Context, logger *zap.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger set on the context, or a no-op logger.
func GetLogger(ctx Context) *zap.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}
