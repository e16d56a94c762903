package showcase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"thirdcoast.systems/hydra/internal/services/httpclient"
)

// Widget is the demo entity behind the gallery grid. Its type name is the
// backend controller name.
type Widget struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Size string    `json:"size"`
}

// WidgetStore is the in-memory table served by the demo backend.
type WidgetStore struct {
	mu    sync.RWMutex
	items []Widget
}

func NewWidgetStore(seed ...Widget) *WidgetStore {
	return &WidgetStore{items: seed}
}

// DefaultWidgets seeds the demo backend.
func DefaultWidgets() []Widget {
	return []Widget{
		{ID: uuid.MustParse("5b0b6a32-0c57-4f4e-8f0c-1f7b8c1d2e01"), Name: "Gear", Size: "Small"},
		{ID: uuid.MustParse("5b0b6a32-0c57-4f4e-8f0c-1f7b8c1d2e02"), Name: "Sprocket", Size: "Medium"},
		{ID: uuid.MustParse("5b0b6a32-0c57-4f4e-8f0c-1f7b8c1d2e03"), Name: "Flywheel", Size: "Large"},
	}
}

// Select fills table's rows, honouring equality filters on its columns.
func (s *WidgetStore) Select(table httpclient.Table) httpclient.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table.Rows = nil
	for _, w := range s.items {
		if !matches(w, table.Columns) {
			continue
		}
		table.Rows = append(table.Rows, map[string]any{
			"id":   w.ID.String(),
			"name": w.Name,
			"size": w.Size,
		})
	}
	return table
}

// Get returns the widget with id.
func (s *WidgetStore) Get(id uuid.UUID) (Widget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.items {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}

// Create stores w under a fresh ID and returns it.
func (s *WidgetStore) Create(w Widget) Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = uuid.New()
	s.items = append(s.items, w)
	return w
}

// Update replaces the widget with w's ID. It reports false for unknown IDs.
func (s *WidgetStore) Update(w Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == w.ID {
			s.items[i] = w
			return true
		}
	}
	return false
}

func (s *WidgetStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func matches(w Widget, cols []httpclient.Column) bool {
	for _, col := range cols {
		var have string
		switch strings.ToLower(col.Name) {
		case "id":
			have = w.ID.String()
		case "name":
			have = w.Name
		case "size":
			have = w.Size
		default:
			continue
		}
		for _, f := range col.Filters {
			if f.Operator != httpclient.FilterEqual {
				continue
			}
			if want, ok := f.Value.(string); ok && !strings.EqualFold(want, have) {
				return false
			}
		}
	}
	return true
}

// LoadWidgets fetches the widget table through the API client. Failures
// have already been reported by the client and yield nil.
func LoadWidgets(ctx context.Context, api *httpclient.APIClient[Widget]) *httpclient.Table {
	if api == nil {
		return nil
	}
	t, ok := api.Select(ctx, nil)
	if !ok {
		return nil
	}
	return t
}
