package ui

import (
	"slices"

	"github.com/five82/memscope/internal/query"
)

// defaultDirection is the direction a column starts with when first sorted.
// Sizes and counts are most useful largest first.
func defaultDirection(kind query.Kind) query.Direction {
	if kind == query.KindNumber {
		return query.Desc
	}
	return query.Asc
}

// sortBy makes column the primary key. Pressing it again on the current primary
// flips its direction and keeps the secondary keys.
func sortBy(spec query.SortSpec, column string, kind query.Kind) query.SortSpec {
	if len(spec) > 0 && spec[0].Column == column {
		out := slices.Clone(spec)
		out[0].Direction = out[0].Direction.Toggle()
		return out
	}
	return query.SortSpec{{Column: column, Direction: defaultDirection(kind)}}
}

// addSortKey appends column as the lowest priority key, or flips its direction
// when it is already part of the spec.
func addSortKey(spec query.SortSpec, column string, kind query.Kind) query.SortSpec {
	out := slices.Clone(spec)
	if i := out.Index(column); i >= 0 {
		out[i].Direction = out[i].Direction.Toggle()
		return out
	}
	return append(out, query.SortKey{Column: column, Direction: defaultDirection(kind)})
}
