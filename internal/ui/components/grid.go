package components

import (
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/ui/theme"
)

// Grid renders the 3x3 memory board. Cells are indexed 0..8, row-major.
type Grid struct {
	// Lit is the index of the currently highlighted cell, or -1.
	Lit int

	// Pressed is the index of the cell the user just selected, or -1.
	// Rendered briefly in the secondary color as press feedback.
	Pressed int

	// CellWidth is the inner width of each cell.
	CellWidth int
}

// NewGrid creates a grid with nothing highlighted.
func NewGrid() Grid {
	return Grid{Lit: -1, Pressed: -1, CellWidth: 7}
}

// View renders the grid with each cell labeled 1-9 to match the keys
// that select it.
func (g Grid) View() string {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Width(g.CellWidth).
		Height(1).
		Align(lipgloss.Center, lipgloss.Center)

	lit := base.
		BorderForeground(theme.Accent).
		Background(theme.Accent).
		Foreground(theme.BgDark).
		Bold(true)

	pressed := base.
		BorderForeground(theme.Secondary).
		Foreground(theme.Secondary).
		Bold(true)

	var rows []string
	for row := range 3 {
		var cells []string
		for col := range 3 {
			idx := row*3 + col
			label := string(rune('1' + idx))
			switch idx {
			case g.Lit:
				cells = append(cells, lit.Render(label))
			case g.Pressed:
				cells = append(cells, pressed.Render(label))
			default:
				cells = append(cells, base.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
