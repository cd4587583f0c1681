package screening

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/task/reaction"
	"github.com/tanmay/acuity/internal/ui/components"
	"github.com/tanmay/acuity/internal/ui/theme"
)

// reactionModel drives the reaction-time stage: press space when the
// panel switches from red to green.
type reactionModel struct {
	trial    *reaction.Trial
	gen      int
	measured bool
}

func newReactionModel(rng *rand.Rand) *reactionModel {
	return &reactionModel{
		trial: reaction.New(rng, nil),
	}
}

func (r *reactionModel) init() tea.Cmd {
	return nil
}

func (r *reactionModel) update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case armMsg:
		if msg.gen == r.gen {
			r.trial.Arm()
		}
		return nil, false

	case tea.KeyMsg:
		return r.handleKey(msg)
	}
	return nil, false
}

func (r *reactionModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if r.measured {
		return nil, true
	}
	if msg.String() != "space" && msg.String() != " " {
		return nil, false
	}

	switch r.trial.Stage {
	case reaction.StageReady:
		delay := r.trial.Begin()
		// A false start may have left an arm timer in flight; the
		// generation bump strands it.
		r.gen++
		return tick(delay, armMsg{gen: r.gen}), false

	default:
		outcome := r.trial.Respond()
		if outcome == reaction.OutcomeFalseStart {
			r.gen++
			return nil, false
		}
		if outcome == reaction.OutcomeMeasured {
			r.measured = true
		}
		return nil, false
	}
}

func (r *reactionModel) score() int {
	return r.trial.Millis()
}

func (r *reactionModel) view(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Render("Reaction Time"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Press space the instant the panel turns green"))
	b.WriteString("\n\n")

	b.WriteString(r.panelView(cw))
	b.WriteString("\n\n")

	switch {
	case r.measured:
		b.WriteString(r.resultView())
	case r.trial.TooEarly && r.trial.Stage == reaction.StageReady:
		b.WriteString(theme.Bad.Render("Too soon! Wait for green."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press space to try again"))
	case r.trial.Stage == reaction.StageReady:
		b.WriteString(theme.Hint.Render("press space to begin"))
	case r.trial.Stage == reaction.StageWaiting:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Wait for it..."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (r *reactionModel) panelView(cw int) string {
	style := lipgloss.NewStyle().
		Width(cw - 2).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)

	switch r.trial.Stage {
	case reaction.StageWaiting:
		return style.
			Background(theme.Error).
			Foreground(theme.BgDark).
			Render("WAIT")
	case reaction.StageArmed:
		return style.
			Background(theme.Success).
			Foreground(theme.BgDark).
			Render("GO!")
	default:
		return style.
			Background(theme.BgCard).
			Foreground(theme.TextDim).
			Render("· · ·")
	}
}

func (r *reactionModel) resultView() string {
	var b strings.Builder

	elapsed := time.Duration(r.trial.Millis()) * time.Millisecond
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d ms", r.trial.Millis())))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(reaction.Band(elapsed)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press any key to continue"))

	return b.String()
}
