package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"thirdcoast.systems/hydra/internal/config"
)

func TestOpenDBPoolWithRetry_NoDSN(t *testing.T) {
	_, err := OpenDBPoolWithRetry(context.Background(), config.Config{})
	require.ErrorIs(t, err, ErrNoDatabase)
}

func TestOpenDBPoolWithRetry_BadDSN(t *testing.T) {
	_, err := OpenDBPoolWithRetry(context.Background(), config.Config{DatabaseDSN: "postgres://%zz", DatabaseRetries: 1})
	require.Error(t, err)
}

func TestBackoffGrows(t *testing.T) {
	require.Equal(t, dbOpenBackoffBase, backoff(0))
	require.Greater(t, backoff(2), backoff(1))
}

func TestSleepCtx_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
	require.NoError(t, sleepCtx(context.Background(), time.Millisecond))
}
