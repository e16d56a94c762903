package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/hydra/cmd/web/auth"
	"thirdcoast.systems/hydra/cmd/web/internal/logsink"
	"thirdcoast.systems/hydra/cmd/web/internal/web"
	"thirdcoast.systems/hydra/internal/application"
	"thirdcoast.systems/hydra/internal/config"
	"thirdcoast.systems/hydra/internal/db"
	"thirdcoast.systems/hydra/internal/services"
	"thirdcoast.systems/hydra/internal/services/storage"
	"thirdcoast.systems/hydra/pkg/utils/passwords"
)

const storageScope = "app"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting web service")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var svcOpts []services.Option
	sink := logsink.Sink(logsink.NewMemorySink(0))

	if conf.DatabaseDSN != "" {
		pool, err := application.OpenDBPoolWithRetry(ctx, *conf)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		dbc := db.NewDatabaseConnection(pool)
		if err := dbc.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}

		sink = logsink.NewPostgresSink(dbc)
		svcOpts = append(svcOpts, services.WithStore(storage.NewPostgresStore(dbc.Queries(ctx), storageScope)))
	} else {
		slog.Info("DATABASE_DSN not set; client logs and storage are kept in memory")
	}

	svcs, err := services.New(ctx, *conf, svcOpts...)
	if err != nil {
		slog.Error("failed to initialize client services", "error", err)
		os.Exit(1)
	}

	var creds *passwords.Credentials
	if conf.DemoPassword != "" {
		creds, err = passwords.NewCredentials(conf.DemoUsername, conf.DemoPassword)
		if err != nil {
			slog.Error("failed to hash demo credentials", "error", err)
			os.Exit(1)
		}
	}

	sessionMgr := auth.NewSessionManager(conf.SessionSecret)

	e, err := web.NewWebserver(ctx, web.Options{
		Services:       svcs,
		SessionManager: sessionMgr,
		Hub:            logsink.NewHub(sink),
		Credentials:    creds,
		StrictStyles:   conf.StrictStyleOverrides,
	})
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
