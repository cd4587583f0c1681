package wordscramble

import (
	"math/rand/v2"
	"sort"
	"strings"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func sortedLetters(s string) string {
	letters := strings.Split(s, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}

func TestNew_WordFromVocabulary(t *testing.T) {
	r := New(testRNG(1))

	found := false
	for _, w := range Vocabulary {
		if w == r.Word {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("word %q not in vocabulary", r.Word)
	}
}

func TestNew_ScrambleIsPermutation(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		r := New(testRNG(seed))
		if sortedLetters(r.Word) != sortedLetters(r.Scrambled) {
			t.Errorf("seed %d: %q is not a permutation of %q", seed, r.Scrambled, r.Word)
		}
	}
}

// A random permutation may leave the word unchanged. That is the documented
// contract (no derangement guarantee), so pin it rather than "fix" it.
func TestScramble_IdentityPermutationAccepted(t *testing.T) {
	found := false
	for seed := uint64(0); seed < 5000 && !found; seed++ {
		rng := testRNG(seed)
		if scramble("BRAIN", rng) == "BRAIN" {
			found = true
		}
	}
	if !found {
		t.Skip("no identity permutation in seed range; contract still allows it")
	}
}

func TestSubmit_ExactMatch(t *testing.T) {
	r := &Round{Word: "MEMORY", Scrambled: "MRYOEM"}

	score, err := r.Submit("MEMORY")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
	if !r.Answered {
		t.Error("round should be terminal after submit")
	}
}

func TestSubmit_CloseGuess(t *testing.T) {
	r := &Round{Word: "MEMORY", Scrambled: "MRYOEM"}

	score, err := r.Submit("MEMROY")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	// Edit distance 2 out of 6 letters: round(100*4/6) = 67.
	if score != 67 {
		t.Errorf("score = %d, want 67", score)
	}
}

func TestSubmit_EmptyRejected(t *testing.T) {
	r := &Round{Word: "MEMORY", Scrambled: "MRYOEM"}

	if _, err := r.Submit(""); err != ErrEmptyGuess {
		t.Fatalf("err = %v, want ErrEmptyGuess", err)
	}
	if r.Answered {
		t.Error("empty guess must not advance the round")
	}

	// The round is still answerable afterwards.
	if _, err := r.Submit("MEMORY"); err != nil {
		t.Errorf("Submit after rejected guess: %v", err)
	}
}

func TestSubmit_SecondGuessRejected(t *testing.T) {
	r := &Round{Word: "MEMORY", Scrambled: "MRYOEM"}

	if _, err := r.Submit("MEMORY"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := r.Submit("MEMORY"); err != ErrAnswered {
		t.Errorf("err = %v, want ErrAnswered", err)
	}
}
