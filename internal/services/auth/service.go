// Package auth logs users in against the backend and keeps the resulting
// token in storage.
package auth

import (
	"context"
	"errors"
	"fmt"

	"thirdcoast.systems/hydra/internal/services/httpclient"
	"thirdcoast.systems/hydra/internal/services/storage"
)

const (
	// TokenKey is the storage key of the bearer token.
	TokenKey = "authToken"

	LoginPath = "api/SystemUser/Login"
)

var ErrLoginRejected = errors.New("login rejected")

type LoginView struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
	Token    string `json:"token,omitempty"`
}

type Service struct {
	http     *httpclient.Client
	store    storage.Store
	provider *StateProvider
}

func NewService(c *httpclient.Client, store storage.Store, provider *StateProvider) *Service {
	if provider == nil {
		provider = NewStateProvider()
	}
	return &Service{http: c, store: store, provider: provider}
}

func (s *Service) Provider() *StateProvider {
	return s.provider
}

// WithStore returns a Service sharing the client and provider but persisting
// to store, e.g. a per-request session store.
func (s *Service) WithStore(store storage.Store) *Service {
	return &Service{http: s.http, store: store, provider: s.provider}
}

// Login posts the credentials. On success the returned view carries the
// token, which has also been stored and announced to the provider. A
// rejected login returns an error wrapping ErrLoginRejected.
func (s *Service) Login(ctx context.Context, in LoginView) (*LoginView, error) {
	env, err := httpclient.Post[LoginView, *httpclient.Envelope[*LoginView]](ctx, s.http, LoginPath, in)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if env == nil || !env.Success || env.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrLoginRejected, env.JoinedMessages())
	}

	out := env.Data
	out.Password = ""
	if out.Token != "" {
		if err := storage.Set(ctx, s.store, TokenKey, out.Token); err != nil {
			return nil, fmt.Errorf("store token: %w", err)
		}
		s.provider.NotifyUserLogin(out.Token)
	}
	return out, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.RemoveItem(ctx, TokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	s.provider.NotifyUserLogout()
	return nil
}

// Token returns the stored token, or "".
func (s *Service) Token(ctx context.Context) string {
	tok, _, err := storage.Get[string](ctx, s.store, TokenKey)
	if err != nil {
		return ""
	}
	return tok
}
