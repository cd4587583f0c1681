package screening

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/riskapi"
	"github.com/tanmay/acuity/internal/ui/components"
	"github.com/tanmay/acuity/internal/ui/theme"
)

// submitModel holds the outcome of the submission stage. The parent
// screen owns the async call; this model only renders its state.
type submitModel struct {
	verdict  *riskapi.Verdict
	err      error
	attempts int
}

func (s *submitModel) view(width, height int, inFlight bool) string {
	var content string
	switch {
	case inFlight:
		content = s.sendingView()
	case s.verdict != nil:
		content = s.verdictView(width)
	case s.err != nil:
		content = s.failureView()
	default:
		content = s.sendingView()
	}
	return components.PanelFrame(content, width, height)
}

func (s *submitModel) sendingView() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Submitting"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Sending your results for analysis..."))
	return b.String()
}

func (s *submitModel) failureView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render("Submission failed"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(s.err.Error()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render("Your scores are kept; nothing was lost."))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("R retry · Esc abandon"))
	return b.String()
}

func (s *submitModel) verdictView(width int) string {
	cw := components.ContentWidth(width)
	v := s.verdict

	var b strings.Builder

	b.WriteString(theme.Title.Render("Screening Result"))
	b.WriteString("\n\n")

	catColor := theme.RiskColor(v.RiskCategory)

	b.WriteString(lipgloss.NewStyle().Foreground(catColor).Bold(true).
		Render(fmt.Sprintf("%.1f", v.RiskScore)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(" / 100  ·  "))
	b.WriteString(lipgloss.NewStyle().Foreground(catColor).Bold(true).
		Render(v.RiskCategory))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Risk", v.RiskScore/100, false, cw-8)
	bar.Color = catColor
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Cognitive risk: %.1f", v.CognitiveRisk)))
	b.WriteString("\n")
	if v.SpeechAnalyzed {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Speech sample: analyzed"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Speech sample: not included"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Italic(true).
		Render("This is a screening aid, not a diagnosis."))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press any key to finish"))

	return components.TaskCard(b.String(), cw)
}
