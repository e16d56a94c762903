package logsink

import (
	"context"
	"fmt"

	"thirdcoast.systems/hydra/internal/db"
	"thirdcoast.systems/hydra/internal/services/clientlog"
)

// PostgresSink stores entries in the client_logs table.
type PostgresSink struct {
	dbc *db.DatabaseConnection
}

func NewPostgresSink(dbc *db.DatabaseConnection) *PostgresSink {
	return &PostgresSink{dbc: dbc}
}

func (p *PostgresSink) Record(ctx context.Context, e *Entry) error {
	var status *int32
	if e.StatusCode != nil {
		s := int32(*e.StatusCode)
		status = &s
	}

	receivedAt, err := p.dbc.Queries(ctx).InsertClientLog(ctx, db.InsertClientLogParams{
		ID:            db.PgUUID(e.ID),
		Message:       e.Message,
		StackTrace:    db.NilIfEmpty(e.StackTrace),
		Url:           db.NilIfEmpty(e.URL),
		StatusCode:    status,
		CorrelationID: e.CorrelationID,
		PlatformID:    db.PgUUID(e.PlatformID),
		LoggedAt:      e.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("insert client log: %w", err)
	}
	e.ReceivedAt = receivedAt
	return nil
}

func (p *PostgresSink) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := p.dbc.Queries(ctx).ListRecentClientLogs(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("list client logs: %w", err)
	}

	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		e := Entry{
			ID: db.FromPgUUID(r.ID),
			Request: clientlog.Request{
				Message:       r.Message,
				StackTrace:    db.Deref(r.StackTrace),
				URL:           db.Deref(r.Url),
				CorrelationID: r.CorrelationID,
				PlatformID:    db.FromPgUUID(r.PlatformID),
				Timestamp:     r.LoggedAt,
			},
			ReceivedAt: r.ReceivedAt,
		}
		if r.StatusCode != nil {
			s := int(*r.StatusCode)
			e.StatusCode = &s
		}
		out = append(out, e)
	}
	return out, nil
}
