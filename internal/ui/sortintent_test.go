package ui

import (
	"testing"

	"github.com/five82/memscope/internal/query"
)

func TestSortBy_NewColumnUsesKindDefault(t *testing.T) {
	spec := query.SortSpec{{Column: "name", Direction: query.Asc}}

	got := sortBy(spec, "currentSize", query.KindNumber)
	if got.String() != "currentSize DESC" {
		t.Fatalf("sortBy number = %q, want %q", got, "currentSize DESC")
	}

	got = sortBy(spec, "format", query.KindString)
	if got.String() != "format ASC" {
		t.Fatalf("sortBy string = %q, want %q", got, "format ASC")
	}
}

func TestSortBy_SamePrimaryToggles(t *testing.T) {
	spec := query.SortSpec{
		{Column: "currentSize", Direction: query.Desc},
		{Column: "name", Direction: query.Asc},
	}

	got := sortBy(spec, "currentSize", query.KindNumber)
	if got.String() != "currentSize ASC, name ASC" {
		t.Fatalf("sortBy toggle = %q, want %q", got, "currentSize ASC, name ASC")
	}
	if spec[0].Direction != query.Desc {
		t.Fatalf("sortBy mutated its input: %q", spec)
	}
}

func TestAddSortKey(t *testing.T) {
	spec := query.SortSpec{{Column: "format", Direction: query.Asc}}

	got := addSortKey(spec, "currentSize", query.KindNumber)
	if got.String() != "format ASC, currentSize DESC" {
		t.Fatalf("addSortKey append = %q", got)
	}

	got = addSortKey(got, "currentSize", query.KindNumber)
	if got.String() != "format ASC, currentSize ASC" {
		t.Fatalf("addSortKey toggle = %q", got)
	}

	got = addSortKey(nil, "name", query.KindString)
	if got.String() != "name ASC" {
		t.Fatalf("addSortKey on empty = %q", got)
	}
	if len(spec) != 1 {
		t.Fatalf("addSortKey mutated its input: %q", spec)
	}
}
