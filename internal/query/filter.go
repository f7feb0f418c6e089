package query

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// TriState is the All/YES/NO choice offered for boolean columns.
type TriState string

const (
	All TriState = "All"
	Yes TriState = "YES"
	No  TriState = "NO"
)

// ParseTriState reads "YES" or "NO" in any case; anything else means All.
func ParseTriState(s string) TriState {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YES":
		return Yes
	case "NO":
		return No
	default:
		return All
	}
}

// Next cycles All -> YES -> NO -> All.
func (t TriState) Next() TriState {
	switch t {
	case Yes:
		return No
	case No:
		return All
	default:
		return Yes
	}
}

// Match reports whether v satisfies the state.
func (t TriState) Match(v bool) bool {
	switch t {
	case Yes:
		return v
	case No:
		return !v
	default:
		return true
	}
}

// ConstraintKind identifies the predicate a Constraint applies.
type ConstraintKind int

const (
	ConstraintContains ConstraintKind = iota
	ConstraintTriState
	ConstraintExact
)

// Constraint restricts one column.
type Constraint struct {
	Kind  ConstraintKind
	Text  string
	State TriState
	Value bool
}

// Contains matches string columns containing text, ignoring case.
func Contains(text string) Constraint {
	return Constraint{Kind: ConstraintContains, Text: text}
}

// Tri matches bool columns by tri-state.
func Tri(state TriState) Constraint {
	return Constraint{Kind: ConstraintTriState, State: state}
}

// Exact matches bool columns equal to v.
func Exact(v bool) Constraint {
	return Constraint{Kind: ConstraintExact, Value: v}
}

// IsEmpty reports whether the constraint places no restriction.
func (c Constraint) IsEmpty() bool {
	switch c.Kind {
	case ConstraintContains:
		return c.Text == ""
	case ConstraintTriState:
		return c.State == "" || c.State == All
	default:
		return false
	}
}

// FilterSpec maps column keys to constraints. Absent keys are unconstrained.
type FilterSpec map[string]Constraint

// Active reports whether any constraint restricts rows.
func (f FilterSpec) Active() bool {
	for _, c := range f {
		if !c.IsEmpty() {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the spec.
func (f FilterSpec) Clone() FilterSpec {
	out := make(FilterSpec, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

type predicate[T any] func(T) bool

// Filter keeps the items that satisfy every constraint in spec.
func Filter[T any](items []T, spec FilterSpec, reg *Registry[T]) ([]T, error) {
	keys := make([]string, 0, len(spec))
	for key := range spec {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	folder := cases.Fold()
	preds := make([]predicate[T], 0, len(keys))
	for _, key := range keys {
		c := spec[key]
		if c.IsEmpty() {
			continue
		}
		col, err := reg.column(key)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		p, err := compilePredicate(col, c, folder)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		preds = append(preds, p)
	}

	if len(preds) == 0 {
		return slices.Clone(items), nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			out = append(out, item)
		}
	}
	return out, nil
}

func matchAll[T any](item T, preds []predicate[T]) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

func compilePredicate[T any](col Column[T], c Constraint, folder cases.Caser) (predicate[T], error) {
	switch c.Kind {
	case ConstraintContains:
		if col.Kind != KindString {
			break
		}
		needle := folder.String(c.Text)
		text := col.Text
		if col.Search != nil {
			text = col.Search
		}
		return func(item T) bool {
			return strings.Contains(folder.String(text(item)), needle)
		}, nil
	case ConstraintTriState:
		if col.Kind != KindBool {
			break
		}
		state, get := c.State, col.Bool
		return func(item T) bool { return state.Match(get(item)) }, nil
	case ConstraintExact:
		if col.Kind != KindBool {
			break
		}
		want, get := c.Value, col.Bool
		return func(item T) bool { return get(item) == want }, nil
	}
	return nil, fmt.Errorf("column %q (%s) cannot take constraint kind %d: %w", col.Key, col.Kind, c.Kind, ErrUnsupportedColumn)
}
