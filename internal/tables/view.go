package tables

import (
	"fmt"
	"slices"

	"github.com/five82/memscope/internal/query"
)

// FilterKind tells the UI which filter control a column offers.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterText
	FilterTriState
)

// Field is a sortable column plus its presentation.
type Field[T any] struct {
	query.Column[T]
	Width  int
	Filter FilterKind
	Format func(T) string
}

// Cell renders item for this field.
func (f Field[T]) Cell(item T) string {
	if f.Format != nil {
		return f.Format(item)
	}
	switch f.Kind {
	case query.KindBool:
		return FormatBool(f.Bool(item))
	case query.KindNumber:
		return FormatNumber(f.Number(item))
	default:
		return f.Text(item)
	}
}

// Page is the result of applying a sort and filter to a table's records.
type Page[T any] struct {
	Rows  []T
	Sort  query.SortSpec
	Total int
}

// View binds one table's columns, default sort and filter controls.
type View[T any] struct {
	name        string
	fields      []Field[T]
	registry    *query.Registry[T]
	defaultSort query.SortSpec
}

func newView[T any](name string, defaultSort query.SortSpec, fields ...Field[T]) *View[T] {
	cols := make([]query.Column[T], len(fields))
	for i, f := range fields {
		cols[i] = f.Column
	}
	v := &View[T]{
		name:        name,
		fields:      fields,
		registry:    query.NewRegistry(cols...),
		defaultSort: defaultSort,
	}
	for _, key := range defaultSort {
		if _, ok := v.registry.Lookup(key.Column); !ok {
			panic(fmt.Sprintf("tables: %s default sort on unknown column %q", name, key.Column))
		}
	}
	return v
}

// Name is the table title shown to users.
func (v *View[T]) Name() string { return v.name }

func (v *View[T]) Fields() []Field[T] { return v.fields }

// Field returns the field with the given key.
func (v *View[T]) Field(key string) (Field[T], bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

// DefaultSort returns a fresh copy of the table's default sort.
func (v *View[T]) DefaultSort() query.SortSpec {
	return slices.Clone(v.defaultSort)
}

// EffectiveSort returns spec, or the default sort when spec is empty. Callers that
// keep sort state store the returned value themselves.
func (v *View[T]) EffectiveSort(spec query.SortSpec) query.SortSpec {
	if len(spec) == 0 {
		return v.DefaultSort()
	}
	return spec
}

// Apply filters then sorts items.
func (v *View[T]) Apply(items []T, sort query.SortSpec, filter query.FilterSpec) (Page[T], error) {
	effective := v.EffectiveSort(sort)
	rows, err := query.Filter(items, filter, v.registry)
	if err != nil {
		return Page[T]{}, fmt.Errorf("%s: %w", v.name, err)
	}
	rows, err = query.Sort(rows, effective, v.registry)
	if err != nil {
		return Page[T]{}, fmt.Errorf("%s: %w", v.name, err)
	}
	return Page[T]{Rows: rows, Sort: effective, Total: len(items)}, nil
}

// MustApply is Apply for callers whose sort and filter keys come from Fields. An
// unknown key is a programming error and panics.
func (v *View[T]) MustApply(items []T, sort query.SortSpec, filter query.FilterSpec) Page[T] {
	page, err := v.Apply(items, sort, filter)
	if err != nil {
		panic(err)
	}
	return page
}

// Cells renders every field of item in column order.
func (v *View[T]) Cells(item T) []string {
	out := make([]string, len(v.fields))
	for i, f := range v.fields {
		out[i] = f.Cell(item)
	}
	return out
}
