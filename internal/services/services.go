// Package services assembles the client services in dependency order:
// client log, HTTP client, storage, then authentication.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"thirdcoast.systems/hydra/internal/application"
	"thirdcoast.systems/hydra/internal/config"
	"thirdcoast.systems/hydra/internal/services/auth"
	"thirdcoast.systems/hydra/internal/services/clientlog"
	"thirdcoast.systems/hydra/internal/services/httpclient"
	"thirdcoast.systems/hydra/internal/services/storage"
	"thirdcoast.systems/hydra/pkg/encryption"
)

type Services struct {
	ClientLog  *clientlog.Service
	HTTP       *httpclient.Client
	Store      storage.Store
	Auth       *auth.Service
	Encryption *encryption.Manager
}

type options struct {
	httpClient *http.Client
	store      storage.Store
	encryption *encryption.Manager
}

type Option func(*options)

// WithHTTPClient sets the transport used for both the API and client log.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpClient = h }
}

// WithStore replaces the default in-memory store.
func WithStore(s storage.Store) Option {
	return func(o *options) { o.store = s }
}

// WithEncryption overrides the manager built from configuration.
func WithEncryption(m *encryption.Manager) Option {
	return func(o *options) { o.encryption = m }
}

func New(ctx context.Context, cfg config.Config, opts ...Option) (*Services, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: cfg.HTTPTimeout()}
	}

	logs, err := clientlog.New(cfg.APIBaseURL, cfg.PlatformID, o.httpClient)
	if err != nil {
		return nil, fmt.Errorf("client log: %w", err)
	}

	if o.encryption == nil {
		o.encryption, err = application.InitEncryptionManager(cfg)
		if err != nil {
			return nil, fmt.Errorf("encryption: %w", err)
		}
	}

	store := o.store
	if store == nil {
		store = storage.NewMemoryStore()
	}
	store = storage.Sealed(store, o.encryption)

	s := &Services{
		ClientLog:  logs,
		Store:      store,
		Encryption: o.encryption,
	}

	// The token is read per call so a request-scoped store in ctx wins.
	s.HTTP = httpclient.New(cfg.APIBaseURL, logs,
		httpclient.WithHTTPClient(o.httpClient),
		httpclient.WithTimeout(cfg.HTTPTimeout()),
		httpclient.WithTokenSource(func(ctx context.Context) string {
			return s.Auth.WithStore(s.StoreFor(ctx)).Token(ctx)
		}),
	)
	s.Auth = auth.NewService(s.HTTP, store, auth.NewStateProvider())
	restored := s.Auth.Provider().Restore(ctx, store)

	slog.InfoContext(ctx, "client services ready",
		"api_base_url", cfg.APIBaseURL,
		"correlation_id", logs.CorrelationID(),
		"encryption", o.encryption != nil,
		"authenticated", restored.Authenticated,
	)
	return s, nil
}

// StoreFor returns the request-scoped store in ctx, sealed like the default
// store, or the default store itself.
func (s *Services) StoreFor(ctx context.Context) storage.Store {
	scoped := storage.FromContext(ctx, nil)
	if scoped == nil {
		return s.Store
	}
	return storage.Sealed(scoped, s.Encryption)
}
