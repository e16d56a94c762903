package auth

import (
	"context"
	"log/slog"
	"sync"

	"thirdcoast.systems/hydra/internal/services/storage"
)

// State is the current authentication state.
type State struct {
	Authenticated bool
	Token         string
}

// StateProvider tracks the authentication state and tells subscribers when
// it changes.
type StateProvider struct {
	mu     sync.RWMutex
	state  State
	nextID int
	subs   map[int]func(State)
}

func NewStateProvider() *StateProvider {
	return &StateProvider{subs: make(map[int]func(State))}
}

func (p *StateProvider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Subscribe registers fn for state changes and returns its cancel func.
func (p *StateProvider) Subscribe(fn func(State)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Restore loads a previously stored token. A missing or unreadable token
// leaves the user anonymous.
func (p *StateProvider) Restore(ctx context.Context, store storage.Store) State {
	token, ok, err := storage.Get[string](ctx, store, TokenKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to restore auth token", "error", err)
	}
	if err != nil || !ok || token == "" {
		p.set(State{})
		return State{}
	}
	st := State{Authenticated: true, Token: token}
	p.set(st)
	return st
}

func (p *StateProvider) NotifyUserLogin(token string) {
	p.set(State{Authenticated: token != "", Token: token})
}

func (p *StateProvider) NotifyUserLogout() {
	p.set(State{})
}

func (p *StateProvider) set(st State) {
	p.mu.Lock()
	changed := p.state != st
	p.state = st
	subs := make([]func(State), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(st)
	}
}
