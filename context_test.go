package plait_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
)

func TestContextHeight(t *testing.T) {
	ctx := context.Background()

	if _, ok := plait.GetHeight(ctx); ok {
		t.Fatal("height must not be set on a fresh context")
	}
	if _, err := plait.MustHeight(ctx); !errors.ErrHuman.Is(err) {
		t.Fatalf("expected a coding error, got %+v", err)
	}

	ctx = plait.WithHeight(ctx, 77)
	height, ok := plait.GetHeight(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(77), height)

	height, err := plait.MustHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(77), height)

	// The height is call metadata assigned once by the host.
	assert.Panics(t, func() {
		plait.WithHeight(ctx, 78)
	})
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()

	// Without an assigned logger a usable no-op instance is returned.
	require.NotNil(t, plait.GetLogger(ctx))

	logger := zap.NewNop()
	ctx = plait.WithLogger(ctx, logger)
	assert.Equal(t, logger, plait.GetLogger(ctx))
}
