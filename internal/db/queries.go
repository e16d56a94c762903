package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type LocalStorageItem struct {
	Scope     string
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

const getLocalStorageItem = `-- name: GetLocalStorageItem :one
SELECT scope, key, value, updated_at FROM local_storage
WHERE scope = $1 AND key = $2
`

func (q *Queries) GetLocalStorageItem(ctx context.Context, scope, key string) (LocalStorageItem, error) {
	row := q.db.QueryRow(ctx, getLocalStorageItem, scope, key)
	var i LocalStorageItem
	err := row.Scan(&i.Scope, &i.Key, &i.Value, &i.UpdatedAt)
	return i, err
}

const upsertLocalStorageItem = `-- name: UpsertLocalStorageItem :exec
INSERT INTO local_storage (scope, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (scope, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`

func (q *Queries) UpsertLocalStorageItem(ctx context.Context, scope, key string, value []byte) error {
	_, err := q.db.Exec(ctx, upsertLocalStorageItem, scope, key, value)
	return err
}

const deleteLocalStorageItem = `-- name: DeleteLocalStorageItem :exec
DELETE FROM local_storage WHERE scope = $1 AND key = $2
`

func (q *Queries) DeleteLocalStorageItem(ctx context.Context, scope, key string) error {
	_, err := q.db.Exec(ctx, deleteLocalStorageItem, scope, key)
	return err
}

type ClientLog struct {
	ID            pgtype.UUID
	Message       string
	StackTrace    *string
	Url           *string
	StatusCode    *int32
	CorrelationID string
	PlatformID    pgtype.UUID
	LoggedAt      time.Time
	ReceivedAt    time.Time
}

type InsertClientLogParams struct {
	ID            pgtype.UUID
	Message       string
	StackTrace    *string
	Url           *string
	StatusCode    *int32
	CorrelationID string
	PlatformID    pgtype.UUID
	LoggedAt      time.Time
}

const insertClientLog = `-- name: InsertClientLog :one
INSERT INTO client_logs (id, message, stack_trace, url, status_code, correlation_id, platform_id, logged_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING received_at
`

func (q *Queries) InsertClientLog(ctx context.Context, arg InsertClientLogParams) (time.Time, error) {
	row := q.db.QueryRow(ctx, insertClientLog,
		arg.ID,
		arg.Message,
		arg.StackTrace,
		arg.Url,
		arg.StatusCode,
		arg.CorrelationID,
		arg.PlatformID,
		arg.LoggedAt,
	)
	var receivedAt time.Time
	err := row.Scan(&receivedAt)
	return receivedAt, err
}

const listRecentClientLogs = `-- name: ListRecentClientLogs :many
SELECT id, message, stack_trace, url, status_code, correlation_id, platform_id, logged_at, received_at
FROM client_logs
ORDER BY received_at DESC
LIMIT $1
`

func (q *Queries) ListRecentClientLogs(ctx context.Context, limit int32) ([]ClientLog, error) {
	rows, err := q.db.Query(ctx, listRecentClientLogs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ClientLog
	for rows.Next() {
		var i ClientLog
		if err := rows.Scan(
			&i.ID,
			&i.Message,
			&i.StackTrace,
			&i.Url,
			&i.StatusCode,
			&i.CorrelationID,
			&i.PlatformID,
			&i.LoggedAt,
			&i.ReceivedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
