// Package seqmemory implements the adaptive sequential-memory task:
// a growing sequence of grid cells is played back, the user replays it,
// and the highest fully repeated level is the score.
package seqmemory

import "math/rand/v2"

const (
	// GridCells is the number of cells in the 3x3 grid.
	GridCells = 9

	// MaxLevel caps the sequence length. Clearing level 9 ends the task.
	MaxLevel = 9
)

// Phase is the game's state machine phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseAwaitingInput
	PhaseDone
)

// PressOutcome describes the effect of a single cell press.
type PressOutcome int

const (
	// PressIgnored: press arrived outside awaiting-input (e.g. during
	// playback) and was discarded.
	PressIgnored PressOutcome = iota

	// PressAccepted: press matched the next sequence entry; more remain.
	PressAccepted

	// PressMismatch: press broke the sequence; the game is over.
	PressMismatch

	// PressLevelCleared: the full sequence was repeated; a new round at
	// the next level has begun.
	PressLevelCleared

	// PressComplete: level 9 fully repeated; the game is over with the
	// maximum score.
	PressComplete
)

// Game holds one run of the sequential-memory task.
type Game struct {
	rng *rand.Rand

	Phase    Phase
	Level    int
	Sequence []int

	// MaxLevelReached is the highest level fully repeated so far.
	MaxLevelReached int

	input    []int
	revealed int
}

// New creates an idle game using the given random source.
func New(rng *rand.Rand) *Game {
	return &Game{rng: rng}
}

// Start begins level 1.
func (g *Game) Start() {
	g.Level = 1
	g.MaxLevelReached = 0
	g.newRound()
}

// newRound draws a fresh sequence for the current level and enters playback.
// Repeats across positions are allowed: each entry is an independent draw.
func (g *Game) newRound() {
	g.Sequence = make([]int, g.Level)
	for i := range g.Sequence {
		g.Sequence[i] = g.rng.IntN(GridCells)
	}
	g.input = g.input[:0]
	g.revealed = 0
	g.Phase = PhasePlaying
}

// NextReveal returns the next cell to highlight during playback. When the
// sequence is exhausted it switches to awaiting input and reports ok=false.
func (g *Game) NextReveal() (cell int, ok bool) {
	if g.Phase != PhasePlaying {
		return 0, false
	}
	if g.revealed >= len(g.Sequence) {
		g.Phase = PhaseAwaitingInput
		return 0, false
	}
	cell = g.Sequence[g.revealed]
	g.revealed++
	return cell, true
}

// Press records a user cell selection. The user's input is always a prefix
// of the sequence; the first mismatch ends the game immediately.
func (g *Game) Press(cell int) PressOutcome {
	if g.Phase != PhaseAwaitingInput {
		return PressIgnored
	}

	g.input = append(g.input, cell)
	idx := len(g.input) - 1
	if g.Sequence[idx] != cell {
		g.MaxLevelReached = g.Level - 1
		g.Phase = PhaseDone
		return PressMismatch
	}

	if len(g.input) < len(g.Sequence) {
		return PressAccepted
	}

	// Full sequence repeated.
	g.MaxLevelReached = g.Level
	if g.Level >= MaxLevel {
		g.Phase = PhaseDone
		return PressComplete
	}

	g.Level++
	g.newRound()
	return PressLevelCleared
}

// InputLen reports how many cells of the current sequence have been replayed.
func (g *Game) InputLen() int {
	return len(g.input)
}

// Score is the task's terminal result.
func (g *Game) Score() int {
	if g.MaxLevelReached > MaxLevel {
		return MaxLevel
	}
	return g.MaxLevelReached
}
