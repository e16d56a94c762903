package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"thirdcoast.systems/hydra/internal/config"
)

var (
	dbOpenBackoffBase  = 1 * time.Second
	dbOpenBackoffScale = 1.618
)

// ErrNoDatabase is returned when DATABASE_DSN is not configured.
var ErrNoDatabase = errors.New("no database configured")

func backoff(attempt int) time.Duration {
	return time.Duration(float64(dbOpenBackoffBase) * math.Pow(dbOpenBackoffScale, float64(attempt)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// OpenDBPoolWithRetry opens a PostgreSQL pool and waits until it answers a
// ping, backing off between attempts.
func OpenDBPoolWithRetry(ctx context.Context, conf config.Config) (*pgxpool.Pool, error) {
	if conf.DatabaseDSN == "" {
		return nil, ErrNoDatabase
	}

	cfg, err := pgxpool.ParseConfig(conf.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	retries := max(conf.DatabaseRetries, 1)
	host := cfg.ConnConfig.Host

	var pool *pgxpool.Pool
	var lastErr error

	slog.InfoContext(ctx, "connecting to database", "host", host)
	for i := 0; i < retries; i++ {
		if pool, err = pgxpool.NewWithConfig(ctx, cfg); err == nil {
			break
		}
		lastErr = err

		wait := backoff(i)
		slog.WarnContext(ctx, "database connect failed", "host", host, "attempt", i+1, "retry_in", wait, "error", err)
		if err := sleepCtx(ctx, wait); err != nil {
			return nil, err
		}
	}

	if pool == nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retries, lastErr)
	}

	for i := 0; i < retries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			slog.InfoContext(ctx, "connected to database", "host", host)
			return pool, nil
		}
		lastErr = err

		wait := backoff(i)
		slog.WarnContext(ctx, "database ping failed", "host", host, "attempt", i+1, "retry_in", wait, "error", err)
		if err := sleepCtx(ctx, wait); err != nil {
			pool.Close()
			return nil, err
		}
	}

	pool.Close()
	return nil, fmt.Errorf("failed to ping database after %d attempts: %w", retries, lastErr)
}
