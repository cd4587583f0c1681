package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/router"
	"github.com/tanmay/acuity/internal/screen"
	"github.com/tanmay/acuity/internal/store"
	"github.com/tanmay/acuity/internal/ui/layout"
	"github.com/tanmay/acuity/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []*store.SubmissionRecord
	Err     error
}

// HistoryScreen displays past screening submissions, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	records   []*store.SubmissionRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.RecentSubmissions(context.Background(), 50)
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No screenings submitted yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Timestamp.Format("Jan 02, 2006 15:04")

		var outcome string
		if rec.Success {
			outcome = fmt.Sprintf("risk %.1f  %s", rec.RiskScore, rec.RiskCategory)
		} else {
			outcome = "submission failed"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, dateStr, outcome)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		} else if rec.Success {
			style = style.Foreground(theme.RiskColor(rec.RiskCategory))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			details := []string{
				fmt.Sprintf("    word %d  memory %d  reaction %d ms",
					rec.WordScore, rec.MemoryScore, rec.ReactionMs),
			}
			if rec.Success {
				speech := "no speech sample"
				if rec.SpeechAnalyzed {
					speech = "speech analyzed"
				}
				details = append(details, fmt.Sprintf("    cognitive risk %.1f  %s",
					rec.CognitiveRisk, speech))
			} else if rec.ErrorMessage != "" {
				details = append(details, "    "+rec.ErrorMessage)
			}
			for _, d := range details {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
