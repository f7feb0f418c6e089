package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the command bar drops
	// secondary hints.
	LayoutCompactWidth = 100

	// LayoutPathWidth is the minimum width to show the full report path.
	LayoutPathWidth = 140
)

// Fixed line counts.
const (
	// chromeLines is the header, command bar and tab bar.
	chromeLines = 3

	// boxBorderLines is the top and bottom border of a titled box.
	boxBorderLines = 2

	// overviewBoxHeight fits the three platform headline rows.
	overviewBoxHeight = 3 + boxBorderLines

	// minGroupsBoxHeight keeps the texture group table usable on short terminals.
	minGroupsBoxHeight = 6

	// helpModalWidth is the width of the help overlay.
	helpModalWidth = 64

	// promptCharLimit caps filter and path input.
	promptCharLimit = 1024
)
