package query

import (
	"errors"
	"fmt"
)

// ErrUnsupportedColumn is returned when a sort or filter names a column the registry
// does not know, or asks a column for an operation its kind cannot perform.
var ErrUnsupportedColumn = errors.New("unsupported column")

// Kind selects the comparator strategy for a column.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindDimension
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindDimension:
		return "dimension"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column describes one sortable, filterable field of T. Text serves String and
// Dimension columns, Bool serves Bool columns and Number serves Number columns.
// Search, when set, is the text a Contains filter matches instead of Text.
type Column[T any] struct {
	Key    string
	Title  string
	Kind   Kind
	Text   func(T) string
	Bool   func(T) bool
	Number func(T) float64
	Search func(T) string
}

// Registry maps column keys to their definitions, preserving declaration order.
type Registry[T any] struct {
	columns map[string]Column[T]
	order   []string
}

// NewRegistry builds a registry from column definitions. It panics on duplicate keys
// or on a column missing the accessor its kind requires.
func NewRegistry[T any](columns ...Column[T]) *Registry[T] {
	r := &Registry[T]{columns: make(map[string]Column[T], len(columns))}
	for _, col := range columns {
		if _, dup := r.columns[col.Key]; dup {
			panic(fmt.Sprintf("query: duplicate column %q", col.Key))
		}
		if !col.hasAccessor() {
			panic(fmt.Sprintf("query: column %q has no accessor for kind %s", col.Key, col.Kind))
		}
		r.columns[col.Key] = col
		r.order = append(r.order, col.Key)
	}
	return r
}

func (c Column[T]) hasAccessor() bool {
	switch c.Kind {
	case KindString, KindDimension:
		return c.Text != nil
	case KindBool:
		return c.Bool != nil
	case KindNumber:
		return c.Number != nil
	default:
		return false
	}
}

// Lookup returns the column registered under key.
func (r *Registry[T]) Lookup(key string) (Column[T], bool) {
	col, ok := r.columns[key]
	return col, ok
}

// Keys returns the column keys in declaration order.
func (r *Registry[T]) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry[T]) column(key string) (Column[T], error) {
	col, ok := r.columns[key]
	if !ok {
		return Column[T]{}, fmt.Errorf("column %q: %w", key, ErrUnsupportedColumn)
	}
	return col, nil
}
