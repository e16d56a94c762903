package components

import (
	"fmt"
	"sync"
)

// Entry is one diagnostic key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Debugger is an inspection sink that elements populate with their current
// configuration and resolution layers. Nothing read from a Debugger ever
// feeds back into resolution.
//
// A Debugger may be shared between an element and a UI that displays it, so
// its methods are safe for concurrent use. Change listeners run synchronously
// after the lock is released.
type Debugger struct {
	mu        sync.RWMutex
	keys      []string
	values    map[string]string
	listeners map[int]func()
	nextID    int
}

// NewDebugger returns an empty Debugger.
func NewDebugger() *Debugger {
	return &Debugger{
		values:    make(map[string]string),
		listeners: make(map[int]func()),
	}
}

// Set stores value under key. A nil value is recorded as "null".
func (d *Debugger) Set(key string, value any) {
	if d == nil {
		return
	}
	s := "null"
	if value != nil {
		s = fmt.Sprint(value)
	}

	d.mu.Lock()
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = s
	d.mu.Unlock()

	d.notify()
}

// Get returns the value stored under key.
func (d *Debugger) Get(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.values[key]
	return v, ok
}

// Clear removes every entry.
func (d *Debugger) Clear() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.keys = nil
	d.values = make(map[string]string)
	d.mu.Unlock()

	d.notify()
}

// Snapshot returns the entries in the order their keys were first set.
func (d *Debugger) Snapshot() []Entry {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Entry, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Entry{Key: k, Value: d.values[k]})
	}
	return out
}

// OnChange registers fn to run after every Set or Clear. The returned func
// removes the listener.
func (d *Debugger) OnChange(fn func()) (unsubscribe func()) {
	if d == nil || fn == nil {
		return func() {}
	}
	d.mu.Lock()
	if d.listeners == nil {
		d.listeners = make(map[int]func())
	}
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}

func (d *Debugger) notify() {
	d.mu.RLock()
	fns := make([]func(), 0, len(d.listeners))
	for _, fn := range d.listeners {
		fns = append(fns, fn)
	}
	d.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
