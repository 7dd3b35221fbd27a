// Package utils contains decorators that provide cross-cutting behavior
// around every handler: savepoints, panic recovery, and call logging.
package utils

import (
	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
)

// Savepoint will isolate all writes inside of the call, and commit or
// roll back the savepoint based on the result. With this decorator in
// place a failing handler can never leave partial writes behind.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ plait.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator, but you must call
// OnCheck/OnDeliver so it will be triggered.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on Check.
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{
		onCheck:   true,
		onDeliver: s.onDeliver,
	}
}

// OnDeliver returns a savepoint that will trigger on Deliver.
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{
		onCheck:   s.onCheck,
		onDeliver: true,
	}
}

// Check will optionally set a checkpoint.
func (s Savepoint) Check(ctx plait.Context, store plait.KVStore, tx plait.Tx, next plait.Checker) (plait.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}

	cstore, ok := store.(plait.CacheableKVStore)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	if werr := cache.Write(); werr != nil {
		return plait.CheckResult{}, errors.Wrap(werr, "writing savepoint")
	}
	return res, nil
}

// Deliver will optionally set a checkpoint.
func (s Savepoint) Deliver(ctx plait.Context, store plait.KVStore, tx plait.Tx, next plait.Deliverer) (plait.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}

	cstore, ok := store.(plait.CacheableKVStore)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	if werr := cache.Write(); werr != nil {
		return plait.DeliverResult{}, errors.Wrap(werr, "writing savepoint")
	}
	return res, nil
}
