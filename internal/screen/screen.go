package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tanmay/acuity/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that provide
// custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StepProvider is an optional interface for screens that show a step
// indicator in the header (e.g. "Step 2 of 4").
type StepProvider interface {
	Step() string
}

// EscHandler is an optional interface for screens that intercept Esc,
// e.g. to confirm before abandoning a screening in progress.
type EscHandler interface {
	HandleEsc() (handled bool, cmd tea.Cmd)
}
