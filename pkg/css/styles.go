package css

import (
	"strings"
)

// Property is a single inline style declaration.
type Property struct {
	Key   string
	Value string
}

// StyleMap is an insertion-ordered map from style property name to value.
// A StyleMap never holds a property with a blank value.
// The zero value is an empty map ready to use.
type StyleMap struct {
	entries []Property
	index   map[string]int
}

// NewStyleMap returns a map holding props, applied in order through Set.
func NewStyleMap(props ...Property) *StyleMap {
	m := &StyleMap{}
	for _, p := range props {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores value under key. A blank value removes key instead. An existing
// key keeps its original casing and position and takes the new value. Set on
// a nil map is a no-op.
func (m *StyleMap) Set(key, value string) {
	if m == nil {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		m.Remove(key)
		return
	}

	k := fold(key)
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = value
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Property{Key: key, Value: value})
}

// setIfAbsent stores value under key only when key is not yet defined.
func (m *StyleMap) setIfAbsent(key, value string) {
	if m.Contains(key) {
		return
	}
	m.Set(key, value)
}

// Remove deletes key if present.
func (m *StyleMap) Remove(key string) {
	if m == nil {
		return
	}
	k := fold(strings.TrimSpace(key))
	i, ok := m.index[k]
	if !ok {
		return
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, k)
	for j := i; j < len(m.entries); j++ {
		m.index[fold(m.entries[j].Key)] = j
	}
}

// Contains reports whether key is defined.
func (m *StyleMap) Contains(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Get returns the value stored under key.
func (m *StyleMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[fold(strings.TrimSpace(key))]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// Merge returns a new map with the entries of m overwritten by those of other.
func (m *StyleMap) Merge(other *StyleMap) *StyleMap {
	out := m.Clone()
	if other == nil {
		return out
	}
	for _, p := range other.entries {
		out.Set(p.Key, p.Value)
	}
	return out
}

// Clone returns an independent copy of m. A nil map clones to an empty one.
func (m *StyleMap) Clone() *StyleMap {
	out := &StyleMap{}
	if m == nil {
		return out
	}
	for _, p := range m.entries {
		out.Set(p.Key, p.Value)
	}
	return out
}

// Entries returns the declarations in map order.
func (m *StyleMap) Entries() []Property {
	if m == nil {
		return nil
	}
	out := make([]Property, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of declarations.
func (m *StyleMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// String formats the map as "key: value; key: value".
func (m *StyleMap) String() string {
	if m == nil || len(m.entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.entries))
	for _, p := range m.entries {
		parts = append(parts, p.Key+": "+p.Value)
	}
	return strings.Join(parts, "; ")
}
