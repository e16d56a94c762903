package storage

import (
	"context"
	"fmt"

	"thirdcoast.systems/hydra/internal/db"
)

// PostgresStore keeps items in the local_storage table, partitioned by
// scope (typically a user or session ID).
type PostgresStore struct {
	q     *db.Queries
	scope string
}

func NewPostgresStore(q *db.Queries, scope string) *PostgresStore {
	return &PostgresStore{q: q, scope: scope}
}

func (p *PostgresStore) Scope() string {
	return p.scope
}

// WithScope returns a store sharing the same queries under another scope.
func (p *PostgresStore) WithScope(scope string) *PostgresStore {
	return &PostgresStore{q: p.q, scope: scope}
}

func (p *PostgresStore) SetItem(ctx context.Context, key string, value []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if err := p.q.UpsertLocalStorageItem(ctx, p.scope, key, value); err != nil {
		return fmt.Errorf("upsert local storage item %q: %w", key, err)
	}
	return nil
}

func (p *PostgresStore) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, false, err
	}
	item, err := p.q.GetLocalStorageItem(ctx, p.scope, key)
	if db.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get local storage item %q: %w", key, err)
	}
	return item.Value, true, nil
}

func (p *PostgresStore) RemoveItem(ctx context.Context, key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if err := p.q.DeleteLocalStorageItem(ctx, p.scope, key); err != nil {
		return fmt.Errorf("delete local storage item %q: %w", key, err)
	}
	return nil
}
