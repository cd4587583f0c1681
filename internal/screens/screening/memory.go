package screening

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/task/seqmemory"
	"github.com/tanmay/acuity/internal/ui/components"
	"github.com/tanmay/acuity/internal/ui/theme"
)

// Playback pacing for the memory board.
const (
	prerollDelay = 500 * time.Millisecond
	highlightDur = 600 * time.Millisecond
	gapDur       = 200 * time.Millisecond
	pressFadeDur = 150 * time.Millisecond
	levelPause   = 800 * time.Millisecond
)

// memoryModel drives the sequential memory stage: watch the board light
// up, then repeat the sequence on keys 1-9.
type memoryModel struct {
	game *seqmemory.Game
	grid components.Grid
	gen  int
	over bool
}

func newMemoryModel(rng *rand.Rand) *memoryModel {
	return &memoryModel{
		game: seqmemory.New(rng),
		grid: components.NewGrid(),
	}
}

func (m *memoryModel) init() tea.Cmd {
	m.game.Start()
	return m.startPlayback()
}

// startPlayback bumps the timer generation and schedules the pre-roll,
// invalidating any tick still in flight from a previous level.
func (m *memoryModel) startPlayback() tea.Cmd {
	m.gen++
	m.grid.Lit = -1
	m.grid.Pressed = -1
	return tick(prerollDelay, revealTickMsg{gen: m.gen})
}

func (m *memoryModel) update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case revealTickMsg:
		if msg.gen != m.gen {
			return nil, false
		}
		return m.advancePlayback(), false

	case pressFadeMsg:
		if msg.gen == m.gen {
			m.grid.Pressed = -1
		}
		return nil, false

	case nextLevelMsg:
		if msg.gen != m.gen {
			return nil, false
		}
		return m.startPlayback(), false

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil, false
}

// advancePlayback alternates highlight and gap until the sequence is
// exhausted, then leaves the board awaiting input.
func (m *memoryModel) advancePlayback() tea.Cmd {
	if m.grid.Lit >= 0 {
		m.grid.Lit = -1
		return tick(gapDur, revealTickMsg{gen: m.gen})
	}

	cell, ok := m.game.NextReveal()
	if !ok {
		return nil
	}
	m.grid.Lit = cell
	return tick(highlightDur, revealTickMsg{gen: m.gen})
}

func (m *memoryModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.over {
		return nil, true
	}

	key := msg.String()
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return nil, false
	}
	cell := int(key[0] - '1')

	outcome := m.game.Press(cell)
	if outcome == seqmemory.PressIgnored {
		return nil, false
	}

	m.grid.Pressed = cell
	cmds := []tea.Cmd{tick(pressFadeDur, pressFadeMsg{gen: m.gen})}

	switch outcome {
	case seqmemory.PressLevelCleared:
		cmds = append(cmds, tick(levelPause, nextLevelMsg{gen: m.gen}))
	case seqmemory.PressMismatch, seqmemory.PressComplete:
		m.over = true
	}

	return tea.Batch(cmds...), false
}

func (m *memoryModel) score() int {
	return m.game.Score()
}

func (m *memoryModel) view(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Sequence Memory"))
	b.WriteString("\n")

	switch {
	case m.over:
		b.WriteString(theme.Subtitle.Render("Round over"))
	case m.game.Phase == seqmemory.PhaseAwaitingInput:
		b.WriteString(theme.Subtitle.Render("Repeat the sequence with keys 1-9"))
	default:
		b.WriteString(theme.Subtitle.Render("Watch the board"))
	}
	b.WriteString("\n\n")

	level := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Level %d", m.game.Level))
	progress := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", m.game.InputLen(), len(m.game.Sequence)))
	if m.game.Phase == seqmemory.PhaseAwaitingInput {
		b.WriteString(level + progress)
	} else {
		b.WriteString(level)
	}
	b.WriteString("\n\n")

	b.WriteString(m.grid.View())
	b.WriteString("\n\n")

	if m.over {
		b.WriteString(m.feedbackView())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m *memoryModel) feedbackView() string {
	var b strings.Builder

	score := m.game.Score()
	if score >= seqmemory.MaxLevel {
		b.WriteString(theme.Good.Render("Perfect recall — every level cleared!"))
	} else if m.game.MaxLevelReached == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render("That one slipped away."))
	} else {
		levels := "levels"
		if m.game.MaxLevelReached == 1 {
			levels = "level"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("You held %d %s", m.game.MaxLevelReached, levels)))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Memory score: "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%d / %d", score, seqmemory.MaxLevel)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press any key to continue"))

	return b.String()
}
