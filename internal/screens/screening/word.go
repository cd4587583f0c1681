package screening

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/task/wordscramble"
	"github.com/tanmay/acuity/internal/ui/components"
	"github.com/tanmay/acuity/internal/ui/theme"
)

// wordModel drives the word-unscramble stage: one scrambled word, one
// guess, a similarity score.
type wordModel struct {
	round    *wordscramble.Round
	input    components.TextInput
	answered bool
}

func newWordModel(rng *rand.Rand) *wordModel {
	return &wordModel{
		round: wordscramble.New(rng),
		input: components.NewTextInput("Type the unscrambled word...", 24),
	}
}

func (w *wordModel) init() tea.Cmd {
	return w.input.Init()
}

// update returns (cmd, done). done means the feedback was acknowledged
// and the stage score is final.
func (w *wordModel) update(msg tea.Msg) (tea.Cmd, bool) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if w.answered {
		if isKey {
			return nil, true
		}
		return nil, false
	}

	if isKey && kmsg.String() == "enter" {
		_, err := w.round.Submit(w.input.Value())
		if errors.Is(err, wordscramble.ErrEmptyGuess) {
			w.input.Submit(false)
			return nil, false
		}
		w.answered = true
		return nil, false
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd, false
}

func (w *wordModel) score() int {
	return w.round.Score
}

func (w *wordModel) view(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Render("Word Recall"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Unscramble the letters into a word"))
	b.WriteString("\n\n")

	scrambled := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("  " + strings.Join(strings.Split(w.round.Scrambled, ""), " ") + "  ")
	b.WriteString(components.TaskCard(scrambled, cw))
	b.WriteString("\n\n")

	if w.answered {
		b.WriteString(w.feedbackView())
	} else {
		b.WriteString(w.input.View())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (w *wordModel) feedbackView() string {
	var b strings.Builder

	if w.round.Score == 100 {
		b.WriteString(theme.Good.Render("Exactly right!"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("The word was %s", w.round.Word)))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Similarity: "))
	b.WriteString(lipgloss.NewStyle().Foreground(scoreColor(w.round.Score)).Bold(true).
		Render(fmt.Sprintf("%d / 100", w.round.Score)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press any key to continue"))

	return b.String()
}

func scoreColor(score int) color.Color {
	switch {
	case score >= 80:
		return theme.Success
	case score >= 50:
		return theme.Accent
	default:
		return theme.Error
	}
}
