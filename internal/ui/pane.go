package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memscope/internal/query"
	"github.com/five82/memscope/internal/tables"
)

// cellPadding is the horizontal padding bubbles table applies to every cell.
const cellPadding = 2

// grid is the type-erased surface of a pane that the Model drives.
type grid interface {
	title() string
	setSize(width, height int)
	setStyles(th Theme, focused bool)
	update(msg tea.Msg) tea.Cmd

	moveColumn(delta int)
	selected() (title string, filter tables.FilterKind)
	sortSelected(secondary bool)
	resetSort()
	textFilter() string
	setTextFilter(text string)
	cycleTriState() query.TriState
	clearFilters()
	sortLabel() string
	filterLabel() string

	view() string
}

// pane renders one table view with its own sort, filter and column selection.
type pane[T any] struct {
	name   string
	def    *tables.View[T]
	table  table.Model
	items  []T
	sort   query.SortSpec
	filter query.FilterSpec
	column int
	shown  int
	footer []string
	height int
}

func newPane[T any](v *tables.View[T], keys table.KeyMap) *pane[T] {
	p := &pane[T]{
		name:   v.Name(),
		def:    v,
		filter: query.FilterSpec{},
	}
	p.table = table.New(
		table.WithColumns(p.columns()),
		table.WithKeyMap(keys),
	)
	p.apply()
	return p
}

// setItems replaces the records and keeps the current sort and filters.
func (p *pane[T]) setItems(items []T, footer []string) {
	p.items = items
	p.footer = footer
	p.apply()
	p.fitHeight()
}

// apply runs the query and publishes the effective sort back into pane state, so
// an empty spec becomes the table's default in one place.
func (p *pane[T]) apply() {
	page := p.def.MustApply(p.items, p.sort, p.filter)
	p.sort = page.Sort
	p.shown = len(page.Rows)

	rows := make([]table.Row, len(page.Rows))
	for i, item := range page.Rows {
		rows[i] = p.def.Cells(item)
	}
	p.table.SetColumns(p.columns())
	p.table.SetRows(rows)
	p.table.SetCursor(p.table.Cursor())
}

// columns builds the header titles with sort markers and the selected column marker.
func (p *pane[T]) columns() []table.Column {
	fields := p.def.Fields()
	cols := make([]table.Column, len(fields))
	for i, f := range fields {
		title := f.Title
		if pos := p.sort.Index(f.Key); pos >= 0 {
			arrow := "▲"
			if p.sort[pos].Direction == query.Desc {
				arrow = "▼"
			}
			title += " " + arrow
			if len(p.sort) > 1 {
				title += strconv.Itoa(pos + 1)
			}
		}
		if c, ok := p.filter[f.Key]; ok && !c.IsEmpty() {
			title += " *"
		}
		if i == p.column {
			title = "›" + title
		}
		cols[i] = table.Column{Title: title, Width: f.Width}
	}
	return cols
}

func (p *pane[T]) title() string {
	return fmt.Sprintf("%s (%d/%d)", p.name, p.shown, len(p.items))
}

func (p *pane[T]) setSize(width, height int) {
	p.table.SetWidth(width)
	p.height = height
	p.fitHeight()
}

// fitHeight leaves a line for the summary footer when there is one.
func (p *pane[T]) fitHeight() {
	if p.height == 0 {
		return
	}
	footerLines := 0
	if len(p.footer) > 0 {
		footerLines = 1
	}
	p.table.SetHeight(max(p.height-footerLines, 2))
}

func (p *pane[T]) setStyles(th Theme, focused bool) {
	p.table.SetStyles(th.TableStyles(focused))
	if focused {
		p.table.Focus()
	} else {
		p.table.Blur()
	}
}

func (p *pane[T]) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *pane[T]) moveColumn(delta int) {
	n := len(p.def.Fields())
	if n == 0 {
		return
	}
	p.column = min(max(p.column+delta, 0), n-1)
	p.table.SetColumns(p.columns())
}

func (p *pane[T]) field() tables.Field[T] {
	return p.def.Fields()[p.column]
}

func (p *pane[T]) selected() (string, tables.FilterKind) {
	f := p.field()
	return f.Title, f.Filter
}

func (p *pane[T]) sortSelected(secondary bool) {
	f := p.field()
	if secondary {
		p.sort = addSortKey(p.sort, f.Key, f.Kind)
	} else {
		p.sort = sortBy(p.sort, f.Key, f.Kind)
	}
	p.apply()
}

// resetSort drops the user's sort. apply republishes the default.
func (p *pane[T]) resetSort() {
	p.sort = nil
	p.apply()
}

// textFilter returns the selected column's filter as it would be typed.
func (p *pane[T]) textFilter() string {
	f := p.field()
	c, ok := p.filter[f.Key]
	if !ok {
		return ""
	}
	if f.Filter == tables.FilterTriState {
		return string(c.State)
	}
	return c.Text
}

// setTextFilter filters the selected column by typed text: a substring for text
// columns, "yes" or "no" for bool columns.
func (p *pane[T]) setTextFilter(text string) {
	f := p.field()
	switch f.Filter {
	case tables.FilterText:
		if text == "" {
			delete(p.filter, f.Key)
		} else {
			p.filter[f.Key] = query.Contains(text)
		}
	case tables.FilterTriState:
		if state := query.ParseTriState(text); state == query.All {
			delete(p.filter, f.Key)
		} else {
			p.filter[f.Key] = query.Tri(state)
		}
	default:
		return
	}
	p.apply()
}

// cycleTriState advances the selected bool column through All, YES and NO.
func (p *pane[T]) cycleTriState() query.TriState {
	f := p.field()
	if f.Filter != tables.FilterTriState {
		return query.All
	}
	next := p.filter[f.Key].State.Next()
	if next == query.All {
		delete(p.filter, f.Key)
	} else {
		p.filter[f.Key] = query.Tri(next)
	}
	p.apply()
	return next
}

func (p *pane[T]) clearFilters() {
	p.filter = query.FilterSpec{}
	p.apply()
}

func (p *pane[T]) sortLabel() string {
	if len(p.sort) == 0 {
		return "source order"
	}
	return p.sort.String()
}

// filterLabel lists the active constraints as key=value pairs.
func (p *pane[T]) filterLabel() string {
	if !p.filter.Active() {
		return ""
	}
	var parts []string
	for _, f := range p.def.Fields() {
		c, ok := p.filter[f.Key]
		if !ok || c.IsEmpty() {
			continue
		}
		switch c.Kind {
		case query.ConstraintContains:
			parts = append(parts, f.Key+"~"+c.Text)
		case query.ConstraintTriState:
			parts = append(parts, f.Key+"="+string(c.State))
		}
	}
	return strings.Join(parts, " ")
}

func (p *pane[T]) view() string {
	out := p.table.View()
	if len(p.footer) > 0 {
		out += "\n" + p.footerRow()
	}
	return out
}

// footerRow lays the summary cells out on the table's column grid.
func (p *pane[T]) footerRow() string {
	fields := p.def.Fields()
	var b strings.Builder
	for i, f := range fields {
		cell := ""
		if i < len(p.footer) {
			cell = p.footer[i]
		}
		b.WriteString(" ")
		b.WriteString(fitCell(cell, f.Width))
		b.WriteString(strings.Repeat(" ", cellPadding-1))
	}
	return b.String()
}
