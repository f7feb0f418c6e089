package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/five82/memscope/internal/memreport"
	"github.com/five82/memscope/internal/query"
	"github.com/five82/memscope/internal/tables"
)

func sampleTextures() []memreport.TextureRecord {
	return []memreport.TextureRecord{
		{Name: "T_Rock", Format: "PF_DXT1", CurrentSizeKB: 512, Streaming: true},
		{Name: "DefaultBloomKernel", Format: "PF_FloatRGBA", CurrentSizeKB: 2048},
		{Name: "T_Grass", Format: "PF_DXT5", CurrentSizeKB: 1024, Streaming: true, Uncompressed: true},
	}
}

func newTexturePane() *pane[memreport.TextureRecord] {
	p := newPane(tables.Textures, DefaultKeyMap().tableKeyMap())
	p.setSize(200, 20)
	p.setItems(sampleTextures(), tables.TextureSummaryRow(3))
	return p
}

func rowNames(p *pane[memreport.TextureRecord]) []string {
	var names []string
	for _, row := range p.table.Rows() {
		names = append(names, row[0])
	}
	return names
}

func TestPane_PublishesDefaultSort(t *testing.T) {
	p := newTexturePane()

	if got := p.sortLabel(); got != "currentSize DESC" {
		t.Fatalf("sortLabel() = %q, want %q", got, "currentSize DESC")
	}
	want := "DefaultBloomKernel,T_Grass,T_Rock"
	if got := strings.Join(rowNames(p), ","); got != want {
		t.Fatalf("rows = %q, want %q", got, want)
	}
	if got := p.title(); got != "Textures (3/3)" {
		t.Fatalf("title() = %q, want %q", got, "Textures (3/3)")
	}
}

func TestPane_SortSelectedAndReset(t *testing.T) {
	p := newTexturePane()

	p.sortSelected(false) // name, first press ascending
	if got := strings.Join(rowNames(p), ","); got != "DefaultBloomKernel,T_Grass,T_Rock" {
		t.Fatalf("rows after name ASC = %q", got)
	}
	p.sortSelected(false)
	if got := p.sortLabel(); got != "name DESC" {
		t.Fatalf("sortLabel() after second press = %q, want %q", got, "name DESC")
	}
	if got := strings.Join(rowNames(p), ","); got != "T_Rock,T_Grass,DefaultBloomKernel" {
		t.Fatalf("rows after name DESC = %q", got)
	}

	p.resetSort()
	if got := p.sortLabel(); got != "currentSize DESC" {
		t.Fatalf("sortLabel() after reset = %q, want %q", got, "currentSize DESC")
	}
}

func TestPane_SecondarySort(t *testing.T) {
	p := newTexturePane()
	p.moveColumn(7) // streaming
	p.sortSelected(false)
	p.moveColumn(-7) // name
	p.sortSelected(true)

	if got := p.sortLabel(); got != "streaming ASC, name ASC" {
		t.Fatalf("sortLabel() = %q", got)
	}
	if got := strings.Join(rowNames(p), ","); got != "DefaultBloomKernel,T_Grass,T_Rock" {
		t.Fatalf("rows = %q", got)
	}
	cols := p.columns()
	if !strings.HasSuffix(cols[7].Title, "▲1") || !strings.HasSuffix(cols[0].Title, "▲2") {
		t.Fatalf("column titles = %q / %q, want sort position markers", cols[7].Title, cols[0].Title)
	}
}

func TestPane_TextFilter(t *testing.T) {
	p := newTexturePane()

	p.setTextFilter("t_")
	if got := strings.Join(rowNames(p), ","); got != "T_Grass,T_Rock" {
		t.Fatalf("rows filtered = %q", got)
	}
	if got := p.textFilter(); got != "t_" {
		t.Fatalf("textFilter() = %q, want %q", got, "t_")
	}
	if got := p.filterLabel(); got != "name~t_" {
		t.Fatalf("filterLabel() = %q, want %q", got, "name~t_")
	}
	if got := p.title(); got != "Textures (2/3)" {
		t.Fatalf("title() = %q", got)
	}

	p.setTextFilter("")
	if len(p.table.Rows()) != 3 {
		t.Fatalf("rows after clearing = %d, want 3", len(p.table.Rows()))
	}
}

func TestPane_TextFilterIgnoredOnNonTextColumn(t *testing.T) {
	p := newTexturePane()
	p.moveColumn(2) // currentSize
	p.setTextFilter("x")
	if p.filter.Active() {
		t.Fatalf("filter on number column was applied: %#v", p.filter)
	}
}

func TestPane_CycleTriState(t *testing.T) {
	p := newTexturePane()
	p.moveColumn(11) // uncompressed

	if got := p.cycleTriState(); got != query.Yes {
		t.Fatalf("first cycle = %q, want YES", got)
	}
	if got := strings.Join(rowNames(p), ","); got != "T_Grass" {
		t.Fatalf("rows YES = %q", got)
	}
	if got := p.cycleTriState(); got != query.No {
		t.Fatalf("second cycle = %q, want NO", got)
	}
	if len(p.table.Rows()) != 2 {
		t.Fatalf("rows NO = %d, want 2", len(p.table.Rows()))
	}
	if got := p.cycleTriState(); got != query.All {
		t.Fatalf("third cycle = %q, want All", got)
	}
	if p.filter.Active() {
		t.Fatalf("filter still active after All: %#v", p.filter)
	}
}

func TestPane_ClearFiltersKeepsSort(t *testing.T) {
	p := newTexturePane()
	p.setTextFilter("rock")
	p.sortSelected(false)
	p.clearFilters()

	if len(p.table.Rows()) != 3 {
		t.Fatalf("rows = %d, want 3", len(p.table.Rows()))
	}
	if got := p.sortLabel(); got != "name ASC" {
		t.Fatalf("sortLabel() = %q, want %q", got, "name ASC")
	}
}

func TestPane_MoveColumnClamps(t *testing.T) {
	p := newTexturePane()
	p.moveColumn(-3)
	if p.column != 0 {
		t.Fatalf("column = %d, want 0", p.column)
	}
	p.moveColumn(100)
	if want := len(tables.Textures.Fields()) - 1; p.column != want {
		t.Fatalf("column = %d, want %d", p.column, want)
	}
	cols := p.columns()
	if !strings.HasPrefix(cols[p.column].Title, "›") {
		t.Fatalf("selected column title = %q, want marker", cols[p.column].Title)
	}
}

func TestPane_SourceOrderTables(t *testing.T) {
	p := newPane(tables.TextureGroups, DefaultKeyMap().tableKeyMap())
	p.setItems([]memreport.TextureGroupTotal{
		{Name: "World", InMemMB: 1},
		{Name: "Effects", InMemMB: 9},
	}, nil)

	if got := p.sortLabel(); got != "source order" {
		t.Fatalf("sortLabel() = %q, want source order", got)
	}
	rows := p.table.Rows()
	if len(rows) != 2 || rows[0][0] != "World" || rows[1][0] != "Effects" {
		t.Fatalf("rows = %v, want report order", rows)
	}
}

func TestPane_FooterRowFollowsColumnWidths(t *testing.T) {
	p := newTexturePane()
	row := p.footerRow()

	want := 0
	for _, f := range tables.Textures.Fields() {
		want += f.Width + cellPadding
	}
	if got := runewidth.StringWidth(row); got != want {
		t.Fatalf("footer width = %d, want %d", got, want)
	}
	if !strings.Contains(row, "Count: 3 textures") {
		t.Fatalf("footer = %q, want texture count", row)
	}
	if !strings.Contains(p.view(), "Count: 3 textures") {
		t.Fatalf("view() does not include the footer")
	}
}

func TestPane_TypedTriStateFilter(t *testing.T) {
	p := newTexturePane()
	p.moveColumn(7) // streaming

	p.setTextFilter(" yes ")
	if got := strings.Join(rowNames(p), ","); got != "T_Grass,T_Rock" {
		t.Fatalf("rows streaming=yes = %q", got)
	}
	if got := p.textFilter(); got != "YES" {
		t.Fatalf("textFilter() = %q, want YES", got)
	}
	if got := p.filterLabel(); got != "streaming=YES" {
		t.Fatalf("filterLabel() = %q", got)
	}

	p.setTextFilter("maybe")
	if p.filter.Active() {
		t.Fatalf("unrecognised value should clear the filter: %#v", p.filter)
	}
}
