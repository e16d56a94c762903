package storage

import (
	"context"
	"fmt"

	"thirdcoast.systems/hydra/pkg/encryption"
)

type sealedStore struct {
	inner Store
	m     *encryption.Manager
}

// Sealed encrypts values before they reach inner. A nil manager returns
// inner unchanged.
func Sealed(inner Store, m *encryption.Manager) Store {
	if m == nil {
		return inner
	}
	return &sealedStore{inner: inner, m: m}
}

func (s *sealedStore) SetItem(ctx context.Context, key string, value []byte) error {
	sealed, err := s.m.Seal(value)
	if err != nil {
		return fmt.Errorf("seal %q: %w", key, err)
	}
	return s.inner.SetItem(ctx, key, sealed)
}

func (s *sealedStore) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	sealed, ok, err := s.inner.GetItem(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	plain, err := s.m.Open(sealed)
	if err != nil {
		return nil, false, fmt.Errorf("open %q: %w", key, err)
	}
	return plain, true, nil
}

func (s *sealedStore) RemoveItem(ctx context.Context, key string) error {
	return s.inner.RemoveItem(ctx, key)
}
