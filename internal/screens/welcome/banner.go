package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/ui/theme"
)

const bannerArt = `
  █████╗  ██████╗██╗   ██╗██╗████████╗██╗   ██╗
 ██╔══██╗██╔════╝██║   ██║██║╚══██╔══╝╚██╗ ██╔╝
 ███████║██║     ██║   ██║██║   ██║    ╚████╔╝
 ██╔══██║██║     ██║   ██║██║   ██║     ╚██╔╝
 ██║  ██║╚██████╗╚██████╔╝██║   ██║      ██║
 ╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚═╝   ╚═╝      ╚═╝`

const bannerCompact = "A C U I T Y"

// RenderBanner returns the ACUITY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
