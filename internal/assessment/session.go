// Package assessment owns the screening session: the fixed task order,
// the write-once score fields, and the submission to the risk service.
package assessment

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tanmay/acuity/internal/riskapi"
)

// Stage tracks where the session is in the fixed task order. Each task's
// terminal score is committed before the next stage begins; stages never
// overlap and never run out of order.
type Stage int

const (
	StageWord Stage = iota
	StageMemory
	StageReaction
	StageAudio
	StageSubmit
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageWord:
		return "word"
	case StageMemory:
		return "memory"
	case StageReaction:
		return "reaction"
	case StageAudio:
		return "audio"
	case StageSubmit:
		return "submit"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// ErrNotWav rejects audio files whose name does not end in ".wav".
// A rejected file causes no state change; the user picks another or skips.
var ErrNotWav = errors.New("audio file must have a .wav extension")

// errOutOfOrder is returned when a score arrives in the wrong stage.
// This indicates a driver bug, not user error.
type errOutOfOrder struct {
	op   string
	want Stage
	got  Stage
}

func (e *errOutOfOrder) Error() string {
	return fmt.Sprintf("%s: session is in stage %s, want %s", e.op, e.got, e.want)
}

// Session accumulates one screening run's results. All mutation goes
// through the Record/Attach/Skip methods, which enforce write-once fields
// in strict task order.
type Session struct {
	ID        string
	StartedAt time.Time

	stage      Stage
	submitting bool

	wordScore   int
	memoryScore int
	reactionMs  int
	audio       *riskapi.AudioFile
}

// NewSession starts a session at the word-unscramble stage.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		stage:     StageWord,
	}
}

// Stage reports the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// RecordWordScore commits the word task's similarity percentage and
// advances to the memory task.
func (s *Session) RecordWordScore(score int) error {
	if s.stage != StageWord {
		return &errOutOfOrder{op: "record word score", want: StageWord, got: s.stage}
	}
	if score < 0 || score > 100 {
		return fmt.Errorf("word score %d outside [0,100]", score)
	}
	s.wordScore = score
	s.stage = StageMemory
	return nil
}

// RecordMemoryScore commits the memory task's highest repeated level and
// advances to the reaction task.
func (s *Session) RecordMemoryScore(level int) error {
	if s.stage != StageMemory {
		return &errOutOfOrder{op: "record memory score", want: StageMemory, got: s.stage}
	}
	if level < 0 || level > 9 {
		return fmt.Errorf("memory level %d outside [0,9]", level)
	}
	s.memoryScore = level
	s.stage = StageReaction
	return nil
}

// RecordReactionTime commits the measured reaction time and advances to
// the audio step.
func (s *Session) RecordReactionTime(ms int) error {
	if s.stage != StageReaction {
		return &errOutOfOrder{op: "record reaction time", want: StageReaction, got: s.stage}
	}
	if ms < 0 {
		return fmt.Errorf("reaction time %d must be non-negative", ms)
	}
	s.reactionMs = ms
	s.stage = StageAudio
	return nil
}

// AttachAudio validates and stores the optional voice sample, then
// advances to the submit stage. A non-.wav filename is rejected with no
// state change.
func (s *Session) AttachAudio(filename string, data []byte) error {
	if s.stage != StageAudio {
		return &errOutOfOrder{op: "attach audio", want: StageAudio, got: s.stage}
	}
	if !strings.EqualFold(filepath.Ext(filename), ".wav") {
		return ErrNotWav
	}
	s.audio = &riskapi.AudioFile{Filename: filepath.Base(filename), Data: data}
	s.stage = StageSubmit
	return nil
}

// SkipAudio advances to the submit stage without a sample.
func (s *Session) SkipAudio() error {
	if s.stage != StageAudio {
		return &errOutOfOrder{op: "skip audio", want: StageAudio, got: s.stage}
	}
	s.stage = StageSubmit
	return nil
}

// Submission builds the risk service payload. Only valid once all three
// tasks are committed and the audio step is resolved.
func (s *Session) Submission() (riskapi.Submission, error) {
	if s.stage != StageSubmit {
		return riskapi.Submission{}, &errOutOfOrder{op: "build submission", want: StageSubmit, got: s.stage}
	}
	return riskapi.Submission{
		ScreeningID:    s.ID,
		WordScore:      s.wordScore,
		MemoryScore:    s.memoryScore,
		ReactionTimeMs: s.reactionMs,
		Audio:          s.audio,
	}, nil
}

// BeginSubmit marks a submission in flight. Returns false if one is
// already pending or the session is not ready, so a second submit action
// is ignored rather than duplicated.
func (s *Session) BeginSubmit() bool {
	if s.stage != StageSubmit || s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// SubmitFailed clears the in-flight flag and keeps the session at the
// submit stage: the scores are preserved and the user may retry without
// replaying any task.
func (s *Session) SubmitFailed() {
	s.submitting = false
}

// SubmitSucceeded makes the session terminal.
func (s *Session) SubmitSucceeded() {
	s.submitting = false
	s.stage = StageDone
}

// Submitting reports whether a submission is in flight.
func (s *Session) Submitting() bool {
	return s.submitting
}

// WordScore is valid once the word stage has completed.
func (s *Session) WordScore() int { return s.wordScore }

// MemoryScore is valid once the memory stage has completed.
func (s *Session) MemoryScore() int { return s.memoryScore }

// ReactionTimeMs is valid once the reaction stage has completed.
func (s *Session) ReactionTimeMs() int { return s.reactionMs }

// Audio returns the attached sample, or nil if skipped.
func (s *Session) Audio() *riskapi.AudioFile { return s.audio }
