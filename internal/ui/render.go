package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/five82/memscope/internal/state"
	"github.com/five82/memscope/internal/tables"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderHeader renders the status bar: report path, load state and the last notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurface(m.theme.Surface)
	snap := m.store.Snapshot()

	pathLimit := 48
	if m.width >= LayoutPathWidth {
		pathLimit = 90
	}

	parts := []string{bg.paint("memscope", styles.Logo)}

	switch {
	case snap.HasResult:
		parts = append(parts,
			bg.paint(truncateMiddle(snap.Path, pathLimit), styles.Text),
			bg.paint(fmt.Sprintf("%d lines", snap.Result.LineCount), styles.MutedText),
			bg.paint("loaded "+snap.LoadedAt.Format("15:04:05"), styles.FaintText))
	case !snap.Loading && snap.LastError == nil:
		parts = append(parts, bg.paint("No report loaded. Press o to open one.", styles.MutedText))
	}

	if snap.Loading {
		parts = append(parts,
			m.spinner.View()+bg.gap(1)+
				bg.paint("Loading "+truncateMiddle(snap.LoadingPath, pathLimit)+loadProgress(snap), styles.WarningText))
	}
	if snap.LastError != nil {
		parts = append(parts, bg.paint("ERROR "+truncate(snap.LastError.Error(), 80), styles.DangerText))
	}
	if m.notice != "" {
		parts = append(parts, bg.paint(m.notice, styles.InfoText))
	}

	line := bg.join(parts, 2)
	return styles.Header.Width(m.width).Render(ansi.Truncate(line, max(m.width-2, 0), ""))
}

// renderCommandBar renders the key hints for the focused pane, or the active prompt.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurface(m.theme.Surface)

	if m.prompt != promptNone {
		return styles.Header.Width(m.width).Render(bg.join([]string{
			m.input.View(),
			bg.hint("enter", "Apply", styles.AccentText, styles.MutedText),
			bg.hint("esc", "Cancel", styles.AccentText, styles.MutedText),
		}, 2))
	}

	title, kind := m.panes[m.focus].selected()

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"←/→", truncate(title, 16)},
		{"s/S", "Sort"},
		{"x", "Reset"},
	}
	switch kind {
	case tables.FilterText:
		commands = append(commands, cmd{"/", "Filter"})
	case tables.FilterTriState:
		commands = append(commands, cmd{"f", "YES/NO"})
	}
	commands = append(commands, cmd{"c", "Clear"})
	if m.width >= LayoutCompactWidth {
		commands = append(commands,
			cmd{"o", "Open"},
			cmd{"r", "Reload"},
			cmd{"Tab", "Pane"},
		)
	}

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments, bg.hint(c.key, c.desc, styles.AccentText, styles.MutedText))
	}
	segments = append(segments,
		m.help.ShortHelpView(m.keys.ShortHelp()),
		bg.hint("T", m.theme.Name, styles.AccentText, styles.FaintText))

	line := bg.join(segments, 2)
	return styles.Header.Width(m.width).Render(ansi.Truncate(line, max(m.width-2, 0), ""))
}

// renderTabs renders the tab strip with the focused pane's tab highlighted.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	active := styles.Selected.Bold(true).Padding(0, 2)
	inactive := styles.MutedText.Background(lipgloss.Color(m.theme.Background)).Padding(0, 2)

	current := m.currentTab()
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == current {
			tabs[i] = active.Render(title)
		} else {
			tabs[i] = inactive.Render(title)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return styles.Background.Width(m.width).Render(row)
}

// renderContent renders the panes of the current tab.
func (m Model) renderContent() string {
	content := max(m.height-chromeLines, 2*boxBorderLines+2)

	switch m.currentTab() {
	case TabSummary:
		overview := m.renderTitledBox("Platform", m.renderOverview(), m.width, overviewBoxHeight, false)
		lines := m.renderPane(0, content-overviewBoxHeight)
		return overview + "\n" + lines
	case TabTextures:
		groupsBox := max(minGroupsBoxHeight, content/3)
		return m.renderPane(1, groupsBox) + "\n" + m.renderPane(2, content-groupsBox)
	default:
		return m.renderPane(3, content)
	}
}

// renderPane boxes pane i with its counts, sort and filters in the title.
func (m Model) renderPane(i, height int) string {
	p := m.panes[i]
	title := p.title() + "  sort: " + p.sortLabel()
	if f := p.filterLabel(); f != "" {
		title += "  filter: " + f
	}
	return m.renderTitledBox(title, p.view(), m.width, height, i == m.focus)
}

// renderOverview renders the platform headline statistics.
func (m Model) renderOverview() string {
	styles := m.theme.Styles()
	nameWidth := 0
	for _, e := range m.overview {
		nameWidth = max(nameWidth, runewidth.StringWidth(e.Name))
	}
	lines := make([]string, len(m.overview))
	for i, e := range m.overview {
		value := e.Value
		if value == "" {
			value = "-"
		}
		lines[i] = " " + styles.AccentText.Render(padRight(e.Name, nameWidth)) + "  " + styles.Text.Render(value)
	}
	return strings.Join(lines, "\n")
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// Frame style: ┌─── Title ───┐
// Focused boxes use BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := newSurface(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := runewidth.StringWidth(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.paint("┌", borderStyle) +
		bg.paint(strings.Repeat("─", leftPad), borderStyle) +
		bg.paint(" "+title+" ", titleStyle) +
		bg.paint(strings.Repeat("─", rightPad), borderStyle) +
		bg.paint("┐", borderStyle)

	bottomBorder := bg.paint("└", borderStyle) +
		bg.paint(strings.Repeat("─", innerWidth), borderStyle) +
		bg.paint("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-boxBorderLines, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			// Cut wide rows before lipgloss would wrap them.
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		lines = append(lines,
			bg.paint("│", borderStyle)+
				contentStyle.Render(line)+
				bg.paint("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}

// loadProgress formats the in-flight read as " 12.5/40.0 MB (31%)". Decoded UTF-16
// input can run past the on-disk size, so the percentage is capped.
func loadProgress(snap state.Snapshot) string {
	if snap.TotalBytes <= 0 {
		return ""
	}
	const mb = 1 << 20
	pct := min(snap.LoadedBytes*100/snap.TotalBytes, 100)
	return fmt.Sprintf(" %.1f/%.1f MB (%d%%)", float64(snap.LoadedBytes)/mb, float64(snap.TotalBytes)/mb, pct)
}
