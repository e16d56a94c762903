package httpclient

import (
	"context"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

type ViewType int

const (
	ListView ViewType = iota
	CreateView
	EditView
	DetailsView
)

func (v ViewType) String() string {
	switch v {
	case CreateView:
		return "CreateView"
	case EditView:
		return "EditView"
	case DetailsView:
		return "DetailsView"
	default:
		return "ListView"
	}
}

const FilterEqual = "eq"

type Filter struct {
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

type Column struct {
	Name    string   `json:"name"`
	Alias   string   `json:"alias,omitempty"`
	Filters []Filter `json:"filters,omitempty"`
}

// EqualFilterColumn returns a column filtered on name == value.
func EqualFilterColumn(name, alias string, value any) Column {
	return Column{
		Name:    name,
		Alias:   alias,
		Filters: []Filter{{Operator: FilterEqual, Value: value}},
	}
}

// Table describes a backend selection: which entity, which view and which
// columns, plus the rows the backend filled in.
type Table struct {
	Name     string           `json:"name"`
	ViewType ViewType         `json:"viewType"`
	Columns  []Column         `json:"columns,omitempty"`
	Rows     []map[string]any `json:"rows,omitempty"`
}

// AlterOrAddColumn replaces the column with the same name (compared
// case-insensitively) or appends col.
func (t *Table) AlterOrAddColumn(col Column) {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, col.Name) {
			t.Columns[i] = col
			return
		}
	}
	t.Columns = append(t.Columns, col)
}

func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Column{}, false
}

// APIClient is a CRUD client for one entity type. The backend controller is
// the type's name.
type APIClient[T any] struct {
	http       *Client
	controller string
}

func NewAPIClient[T any](c *Client) *APIClient[T] {
	return &APIClient[T]{http: c, controller: typeName[T]()}
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func (a *APIClient[T]) Controller() string {
	return a.controller
}

func (a *APIClient[T]) URL(action string) string {
	if strings.TrimSpace(action) == "" {
		return a.controller
	}
	return a.controller + "/" + action
}

// Select posts the table descriptor to the Select action. A nil table or a
// blank name defaults to the controller.
func (a *APIClient[T]) Select(ctx context.Context, table *Table) (*Table, bool) {
	if table == nil {
		table = &Table{}
	}
	if table.Name == "" {
		table.Name = a.controller
	}
	return PostEnvelope[*Table](ctx, a.http, a.URL("Select"), table)
}

func (a *APIClient[T]) Create(ctx context.Context, entity T) (T, bool) {
	return PostEnvelope[T](ctx, a.http, a.URL("Create"), entity)
}

func (a *APIClient[T]) Update(ctx context.Context, entity T) (T, bool) {
	return PutEnvelope[T](ctx, a.http, a.URL("Update"), entity)
}

// Delete reports whether the backend confirmed the deletion.
func (a *APIClient[T]) Delete(ctx context.Context, id uuid.UUID) bool {
	deleted, ok := DeleteEnvelope[bool](ctx, a.http, BuildURL(a.controller, "Delete", nil, id.String(), ""))
	return ok && deleted
}

func (a *APIClient[T]) CreateView(ctx context.Context) (*Table, bool) {
	return a.Select(ctx, &Table{Name: a.controller, ViewType: CreateView})
}

func (a *APIClient[T]) UpdateView(ctx context.Context, id uuid.UUID) (*Table, bool) {
	t := &Table{Name: a.controller, ViewType: EditView}
	t.AlterOrAddColumn(EqualFilterColumn("Id", "", id))
	return a.Select(ctx, t)
}

type detailsContainer[T any] struct {
	Table *Table `json:"table"`
	Item  *T     `json:"item"`
}

func (a *APIClient[T]) DetailsView(ctx context.Context, id uuid.UUID) (*Table, bool) {
	c, ok := GetEnvelope[detailsContainer[T]](ctx, a.http, BuildURL(a.controller, "Details", nil, id.String(), ""))
	if !ok || c.Table == nil {
		return nil, false
	}
	return c.Table, true
}
