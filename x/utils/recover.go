package utils

import (
	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
)

// Recovery is a decorator to recover from panics in transactions, so we
// can report them as normal errors.
type Recovery struct{}

var _ plait.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors.
func (r Recovery) Check(ctx plait.Context, store plait.KVStore, tx plait.Tx, next plait.Checker) (_ plait.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors.
func (r Recovery) Deliver(ctx plait.Context, store plait.KVStore, tx plait.Tx, next plait.Deliverer) (_ plait.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
