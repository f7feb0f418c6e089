package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the order of one sort key.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Toggle flips ASC and DESC.
func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// SortKey orders records by one column.
type SortKey struct {
	Column    string
	Direction Direction
}

func (k SortKey) String() string {
	return k.Column + " " + k.Direction.String()
}

// SortSpec is an ordered list of sort keys; earlier keys win ties.
type SortSpec []SortKey

// Index returns the position of column in the spec, or -1.
func (s SortSpec) Index(column string) int {
	for i, key := range s {
		if key.Column == column {
			return i
		}
	}
	return -1
}

func (s SortSpec) String() string {
	parts := make([]string, len(s))
	for i, key := range s {
		parts[i] = key.String()
	}
	return strings.Join(parts, ", ")
}

// Comparator reports the order of two records: negative, zero or positive.
type Comparator[T any] func(a, b T) int

// collationTag is the locale used for String columns.
var collationTag = language.English

// Comparator resolves the comparator for a single column key.
func (r *Registry[T]) Comparator(key string) (Comparator[T], error) {
	return r.comparator(key, collate.New(collationTag))
}

func (r *Registry[T]) comparator(key string, coll *collate.Collator) (Comparator[T], error) {
	col, err := r.column(key)
	if err != nil {
		return nil, err
	}
	switch col.Kind {
	case KindString:
		text := col.Text
		return func(a, b T) int { return coll.CompareString(text(a), text(b)) }, nil
	case KindBool:
		get := col.Bool
		return func(a, b T) int { return compareBool(get(a), get(b)) }, nil
	case KindDimension:
		text := col.Text
		return func(a, b T) int { return CompareDimensions(text(a), text(b)) }, nil
	case KindNumber:
		num := col.Number
		return func(a, b T) int { return cmp.Compare(num(a), num(b)) }, nil
	default:
		return nil, fmt.Errorf("column %q kind %s: %w", key, col.Kind, ErrUnsupportedColumn)
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// Sort returns a stably sorted copy of items. Unknown column keys fail before any
// record is compared.
func Sort[T any](items []T, spec SortSpec, reg *Registry[T]) ([]T, error) {
	coll := collate.New(collationTag)
	chain := make([]Comparator[T], 0, len(spec))
	for _, key := range spec {
		c, err := reg.comparator(key.Column, coll)
		if err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
		if key.Direction == Desc {
			asc := c
			c = func(a, b T) int { return -asc(a, b) }
		}
		chain = append(chain, c)
	}

	out := slices.Clone(items)
	if len(chain) == 0 {
		return out, nil
	}
	slices.SortStableFunc(out, func(a, b T) int {
		for _, c := range chain {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	})
	return out, nil
}
