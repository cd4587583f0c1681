package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/riskapi"
	"github.com/tanmay/acuity/internal/router"
	"github.com/tanmay/acuity/internal/screen"
	"github.com/tanmay/acuity/internal/screens/check"
	"github.com/tanmay/acuity/internal/screens/history"
	"github.com/tanmay/acuity/internal/screens/screening"
	"github.com/tanmay/acuity/internal/store"
	"github.com/tanmay/acuity/internal/ui/components"
	"github.com/tanmay/acuity/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	lastRun   *store.SubmissionRecord
	totalRuns int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(eventRepo store.EventRepo, riskClient riskapi.Client) *HomeScreen {
	// Load most recent submission for the stats panel.
	var lastRun *store.SubmissionRecord
	var totalRuns int
	if eventRepo != nil {
		if recent, err := eventRepo.RecentSubmissions(context.Background(), 50); err == nil {
			totalRuns = len(recent)
			if len(recent) > 0 {
				lastRun = recent[0]
			}
		}
	}

	items := []components.MenuItem{
		{Label: "START SCREENING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: screening.New(eventRepo, riskClient)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "CHECK SERVICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: check.New(riskClient)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		lastRun:   lastRun,
		totalRuns: totalRuns,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ACUITY")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("cognitive screening battery")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStats())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	line := label.Render("Screenings completed: ") + value.Render(fmt.Sprintf("%d", h.totalRuns))

	if h.lastRun != nil && h.lastRun.Success {
		cat := lipgloss.NewStyle().
			Foreground(theme.RiskColor(h.lastRun.RiskCategory)).
			Bold(true).
			Render(h.lastRun.RiskCategory)
		line += "\n" + label.Render("Last result: ") +
			value.Render(fmt.Sprintf("%.1f ", h.lastRun.RiskScore)) + cat
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
