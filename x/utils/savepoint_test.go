package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
	"github.com/plait-network/plait/plaittest"
	"github.com/plait-network/plait/store"
)

// writingHandler writes one key and then returns its configured error.
type writingHandler struct {
	key, value []byte
	err        error
}

func (h writingHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return plait.CheckResult{}, err
	}
	return plait.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return plait.DeliverResult{}, err
	}
	return plait.DeliverResult{}, h.err
}

func TestSavepointCommitsOnSuccess(t *testing.T) {
	h := writingHandler{key: []byte("k"), value: []byte("v")}
	stack := plaittest.Decorate(h, NewSavepoint().OnCheck().OnDeliver())

	db := store.MemStore()
	tx := &plaittest.Tx{Msg: &plaittest.Msg{RoutePath: "demo/ok"}}
	_, err := stack.Deliver(context.Background(), db, tx)
	require.NoError(t, err)

	val, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}

func TestSavepointRollsBackOnError(t *testing.T) {
	h := writingHandler{
		key:   []byte("k"),
		value: []byte("v"),
		err:   errors.ErrState.New("broken"),
	}
	stack := plaittest.Decorate(h, NewSavepoint().OnCheck().OnDeliver())

	db := store.MemStore()
	tx := &plaittest.Tx{Msg: &plaittest.Msg{RoutePath: "demo/fail"}}

	_, err := stack.Check(context.Background(), db, tx)
	assert.True(t, errors.ErrState.Is(err))
	_, err = stack.Deliver(context.Background(), db, tx)
	assert.True(t, errors.ErrState.Is(err))

	// The write inside the failing call never reached the store.
	ok, err := db.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSavepointInactiveWithoutTrigger(t *testing.T) {
	h := writingHandler{
		key:   []byte("k"),
		value: []byte("v"),
		err:   errors.ErrState.New("broken"),
	}
	// Without OnCheck/OnDeliver the decorator is transparent and the
	// write of the failing handler leaks through.
	stack := plaittest.Decorate(h, NewSavepoint())

	db := store.MemStore()
	tx := &plaittest.Tx{Msg: &plaittest.Msg{RoutePath: "demo/fail"}}
	_, err := stack.Deliver(context.Background(), db, tx)
	assert.True(t, errors.ErrState.Is(err))

	ok, err := db.Has([]byte("k"))
	require.NoError(t, err)
	assert.True(t, ok)
}
