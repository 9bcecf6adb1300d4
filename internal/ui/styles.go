package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, cursor tile
	ColorHighlight = "205" // Magenta - selected tile, borders
	ColorDanger    = "196" // Red - delete control, rejections
	ColorMuted     = "241" // Gray - hints, counts
	ColorText      = "252" // Light gray - normal text, hovered tile
	ColorDim       = "238" // Dark gray - idle tile borders
	ColorWarning   = "208" // Orange - pending states
)

// Styles contains shared style definitions used across views and the upload dialog.
var Styles = struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Normal    lipgloss.Style
	Hint      lipgloss.Style
	Selected  lipgloss.Style
	Empty     lipgloss.Style
	Author    lipgloss.Style
	Danger    lipgloss.Style
	Notice    lipgloss.Style
	Pending   lipgloss.Style
	Button    lipgloss.Style
	Box       lipgloss.Style // upload dialog
	DropZone  lipgloss.Style
	DropHover lipgloss.Style // drop zone while a drag is over it
	Sidebar   lipgloss.Style // comment panel
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Author: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Notice: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Pending: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	DropZone: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 2),
	DropHover: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	Sidebar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorDim)).
		PaddingLeft(1),
}

// tileStyle returns the border style for a gallery tile.
func tileStyle(selected, cursor, hover bool) lipgloss.Style {
	color := ColorDim
	switch {
	case selected:
		color = ColorHighlight
	case cursor:
		color = ColorAccent
	case hover:
		color = ColorText
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Width(tileInnerWidth).
		MarginRight(tileGap)
}
