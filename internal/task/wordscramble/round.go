// Package wordscramble implements the word-unscramble task: one scrambled
// word, one typed guess, scored by edit-distance similarity.
package wordscramble

import (
	"errors"
	"math/rand/v2"

	"github.com/tanmay/acuity/internal/textsim"
)

var (
	// ErrEmptyGuess is returned when the submitted guess is empty.
	// The round does not advance; the user must type something.
	ErrEmptyGuess = errors.New("guess must not be empty")

	// ErrAnswered is returned on a second submission. One guess per round.
	ErrAnswered = errors.New("round already answered")
)

// Round holds the state of a single word-unscramble round.
type Round struct {
	// Word is the answer, drawn uniformly from Vocabulary.
	Word string

	// Scrambled is a random permutation of Word's letters. The permutation
	// is not guaranteed to differ from Word itself; occasionally the
	// "scrambled" word reads unscrambled, and that is accepted behavior.
	Scrambled string

	// Score is the similarity percentage, valid once Answered is true.
	Score int

	// Answered marks the round terminal.
	Answered bool
}

// New draws a word and scrambles it using the given random source.
func New(rng *rand.Rand) *Round {
	word := Vocabulary[rng.IntN(len(Vocabulary))]
	return &Round{
		Word:      word,
		Scrambled: scramble(word, rng),
	}
}

// Submit scores the guess against the round's word and makes the round
// terminal. An empty guess is rejected without a state change.
func (r *Round) Submit(guess string) (int, error) {
	if r.Answered {
		return 0, ErrAnswered
	}
	if guess == "" {
		return 0, ErrEmptyGuess
	}
	r.Score = textsim.Score(r.Word, guess)
	r.Answered = true
	return r.Score, nil
}

// scramble returns a uniform random permutation of the word's letters.
func scramble(word string, rng *rand.Rand) string {
	letters := []rune(word)
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return string(letters)
}
