package textsim

import "testing"

func TestScore_Identical(t *testing.T) {
	for _, w := range []string{"MEMORY", "a", "garden", "Recall"} {
		if got := Score(w, w); got != 100 {
			t.Errorf("Score(%q, %q) = %d, want 100", w, w, got)
		}
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	if got := Score("MEMORY", "memory"); got != 100 {
		t.Errorf("Score(MEMORY, memory) = %d, want 100", got)
	}
}

func TestScore_EmptyCandidate(t *testing.T) {
	if got := Score("MEMORY", ""); got != 0 {
		t.Errorf("Score(MEMORY, \"\") = %d, want 0", got)
	}
}

func TestScore_BothEmpty(t *testing.T) {
	if got := Score("", ""); got != 100 {
		t.Errorf("Score(\"\", \"\") = %d, want 100", got)
	}
}

func TestScore_Transposition(t *testing.T) {
	// MEMORY vs MEMROY: two substitutions, round(100 * (6-2)/6) = 67.
	if got := Score("MEMORY", "MEMROY"); got != 67 {
		t.Errorf("Score(MEMORY, MEMROY) = %d, want 67", got)
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"MEMORY", "MEMROY"},
		{"BRAIN", "TRAIN"},
		{"focus", "fog"},
		{"", "something"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if ab != ba {
			t.Errorf("Score(%q,%q) = %d but Score(%q,%q) = %d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestScore_Bounded(t *testing.T) {
	cases := [][2]string{
		{"BRAIN", "xxxxxxxxxxxxxxxxxxxx"},
		{"A", "completely different"},
		{"HEALTH", "H"},
	}
	for _, c := range cases {
		got := Score(c[0], c[1])
		if got < 0 || got > 100 {
			t.Errorf("Score(%q, %q) = %d, out of [0,100]", c[0], c[1], got)
		}
	}
}
