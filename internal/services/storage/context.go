package storage

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the store carried by ctx, or fallback.
func FromContext(ctx context.Context, fallback Store) Store {
	if s, ok := ctx.Value(ctxKey{}).(Store); ok && s != nil {
		return s
	}
	return fallback
}
