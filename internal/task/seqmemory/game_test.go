package seqmemory

import (
	"math/rand/v2"
	"testing"
)

func testGame() *Game {
	return New(rand.New(rand.NewPCG(42, 0)))
}

// drainReveals plays the current round's playback to completion.
func drainReveals(t *testing.T, g *Game) []int {
	t.Helper()
	var cells []int
	for {
		cell, ok := g.NextReveal()
		if !ok {
			break
		}
		cells = append(cells, cell)
	}
	if g.Phase != PhaseAwaitingInput {
		t.Fatalf("phase = %v after playback, want PhaseAwaitingInput", g.Phase)
	}
	return cells
}

func TestStart_LevelOne(t *testing.T) {
	g := testGame()
	g.Start()

	if g.Level != 1 {
		t.Errorf("Level = %d, want 1", g.Level)
	}
	if len(g.Sequence) != 1 {
		t.Errorf("len(Sequence) = %d, want 1", len(g.Sequence))
	}
	if g.Phase != PhasePlaying {
		t.Errorf("Phase = %v, want PhasePlaying", g.Phase)
	}
}

func TestSequence_CellsInRange(t *testing.T) {
	g := testGame()
	g.Start()
	for range 5 {
		for _, c := range g.Sequence {
			if c < 0 || c >= GridCells {
				t.Fatalf("cell %d out of range", c)
			}
		}
		drainReveals(t, g)
		for _, c := range g.Sequence {
			if g.Press(c) == PressMismatch {
				t.Fatal("unexpected mismatch replaying own sequence")
			}
		}
	}
}

func TestPress_IgnoredDuringPlayback(t *testing.T) {
	g := testGame()
	g.Start()

	if got := g.Press(0); got != PressIgnored {
		t.Errorf("Press during playback = %v, want PressIgnored", got)
	}
	if g.InputLen() != 0 {
		t.Error("ignored press must not be buffered")
	}
}

func TestPress_MismatchEndsGame(t *testing.T) {
	g := testGame()
	g.Start()

	// Clear levels 1 and 2, then miss at level 3: maxLevelReached = 2.
	for level := 1; level <= 2; level++ {
		drainReveals(t, g)
		for _, c := range g.Sequence {
			g.Press(c)
		}
	}
	if g.Level != 3 {
		t.Fatalf("Level = %d, want 3", g.Level)
	}

	drainReveals(t, g)
	wrong := (g.Sequence[0] + 1) % GridCells
	if got := g.Press(wrong); got != PressMismatch {
		t.Fatalf("Press(wrong) = %v, want PressMismatch", got)
	}
	if g.Phase != PhaseDone {
		t.Error("game should be terminal after mismatch")
	}
	if g.MaxLevelReached != 2 {
		t.Errorf("MaxLevelReached = %d, want 2", g.MaxLevelReached)
	}
	if g.Score() != 2 {
		t.Errorf("Score() = %d, want 2", g.Score())
	}
}

func TestPress_MismatchMidSequence(t *testing.T) {
	g := testGame()
	g.Start()

	// Reach level 3 so the sequence is [a, b, c]; reply [a, b, wrong].
	for level := 1; level <= 2; level++ {
		drainReveals(t, g)
		for _, c := range g.Sequence {
			g.Press(c)
		}
	}
	drainReveals(t, g)

	g.Press(g.Sequence[0])
	g.Press(g.Sequence[1])
	wrong := (g.Sequence[2] + 1) % GridCells
	if got := g.Press(wrong); got != PressMismatch {
		t.Fatalf("Press = %v, want PressMismatch", got)
	}
	if g.MaxLevelReached != 2 {
		t.Errorf("MaxLevelReached = %d, want 2", g.MaxLevelReached)
	}
}

func TestPress_LevelCleared(t *testing.T) {
	g := testGame()
	g.Start()
	drainReveals(t, g)

	if got := g.Press(g.Sequence[0]); got != PressLevelCleared {
		t.Fatalf("Press = %v, want PressLevelCleared", got)
	}
	if g.Level != 2 {
		t.Errorf("Level = %d, want 2", g.Level)
	}
	if len(g.Sequence) != 2 {
		t.Errorf("len(Sequence) = %d, want 2", len(g.Sequence))
	}
	if g.Phase != PhasePlaying {
		t.Errorf("Phase = %v, want PhasePlaying (new round)", g.Phase)
	}
	if g.InputLen() != 0 {
		t.Error("input must reset for the new round")
	}
}

func TestPress_CapAtLevelNine(t *testing.T) {
	g := testGame()
	g.Start()

	for level := 1; level <= MaxLevel; level++ {
		drainReveals(t, g)
		seq := append([]int(nil), g.Sequence...)
		for i, c := range seq {
			got := g.Press(c)
			last := i == len(seq)-1
			switch {
			case last && level == MaxLevel:
				if got != PressComplete {
					t.Fatalf("level %d final press = %v, want PressComplete", level, got)
				}
			case last:
				if got != PressLevelCleared {
					t.Fatalf("level %d final press = %v, want PressLevelCleared", level, got)
				}
			default:
				if got != PressAccepted {
					t.Fatalf("level %d press %d = %v, want PressAccepted", level, i, got)
				}
			}
		}
	}

	if g.Phase != PhaseDone {
		t.Error("game should be terminal after clearing level 9")
	}
	if g.MaxLevelReached != 9 {
		t.Errorf("MaxLevelReached = %d, want 9", g.MaxLevelReached)
	}
	if g.Score() != 9 {
		t.Errorf("Score() = %d, want 9", g.Score())
	}
}

func TestPress_IgnoredWhenDone(t *testing.T) {
	g := testGame()
	g.Start()
	drainReveals(t, g)
	g.Press((g.Sequence[0] + 1) % GridCells) // mismatch, terminal

	if got := g.Press(0); got != PressIgnored {
		t.Errorf("Press after done = %v, want PressIgnored", got)
	}
}

func TestFailAtLevelOne_ScoresZero(t *testing.T) {
	g := testGame()
	g.Start()
	drainReveals(t, g)
	g.Press((g.Sequence[0] + 1) % GridCells)

	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
}
