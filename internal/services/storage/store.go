// Package storage is the server-side stand-in for browser local storage:
// small keyed values that survive between requests.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrBlankKey = errors.New("storage: blank key")

// Store holds raw values by key. GetItem reports false for a missing key.
type Store interface {
	SetItem(ctx context.Context, key string, value []byte) error
	GetItem(ctx context.Context, key string) ([]byte, bool, error)
	RemoveItem(ctx context.Context, key string) error
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrBlankKey
	}
	return key, nil
}

// Set stores value as JSON.
func Set[T any](ctx context.Context, s Store, key string, value T) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return s.SetItem(ctx, key, b)
}

// Get loads the JSON value under key. A missing key yields the zero value
// and false.
func Get[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var out T
	b, ok, err := s.GetItem(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, false, fmt.Errorf("unmarshal %q: %w", key, err)
	}
	return out, true, nil
}
