package components

import (
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for task cards so the
// stages visually align as the screening advances.
func ContentWidth(frameWidth int) int {
	// Leave room for the outer border (2) plus inner padding (4).
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// PanelFrame centers content inside a full-size double border, used for
// the screening stages and the verdict view.
func PanelFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// TaskCard wraps content in a rounded-border card at the given width.
func TaskCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
