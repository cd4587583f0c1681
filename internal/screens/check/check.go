package check

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/riskapi"
	"github.com/tanmay/acuity/internal/router"
	"github.com/tanmay/acuity/internal/screen"
	"github.com/tanmay/acuity/internal/ui/layout"
	"github.com/tanmay/acuity/internal/ui/theme"
)

const probeTimeout = 5 * time.Second

type probeDoneMsg struct {
	err error
}

// CheckScreen probes the risk service health endpoint and shows the result.
type CheckScreen struct {
	client riskapi.Client
	done   bool
	err    error
}

var _ screen.Screen = (*CheckScreen)(nil)
var _ screen.KeyHintProvider = (*CheckScreen)(nil)

// New creates a CheckScreen for the given client.
func New(client riskapi.Client) *CheckScreen {
	return &CheckScreen{client: client}
}

func (s *CheckScreen) Title() string {
	return "Service Check"
}

func (s *CheckScreen) Init() tea.Cmd {
	return s.probe()
}

func (s *CheckScreen) probe() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		return probeDoneMsg{err: s.client.Health(ctx)}
	}
}

func (s *CheckScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retry"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CheckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case probeDoneMsg:
		s.done = true
		s.err = msg.err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			s.done = false
			s.err = nil
			return s, s.probe()
		}
	}
	return s, nil
}

func (s *CheckScreen) View(width, height int) string {
	var content string

	switch {
	case !s.done:
		content = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Contacting risk service...")
	case s.err == nil:
		content = lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Risk service is reachable") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Screenings can be submitted for analysis.")
	default:
		content = lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("✗ Risk service is unreachable") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(s.err.Error()) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Check the service URL and press R to retry.")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
