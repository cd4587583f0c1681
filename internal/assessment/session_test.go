package assessment

import (
	"errors"
	"testing"
)

func completedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	if err := s.RecordWordScore(85); err != nil {
		t.Fatalf("word: %v", err)
	}
	if err := s.RecordMemoryScore(6); err != nil {
		t.Fatalf("memory: %v", err)
	}
	if err := s.RecordReactionTime(340); err != nil {
		t.Fatalf("reaction: %v", err)
	}
	return s
}

func TestSession_TaskOrder(t *testing.T) {
	s := NewSession()

	if s.Stage() != StageWord {
		t.Fatalf("initial stage = %v, want StageWord", s.Stage())
	}

	// Out-of-order writes are rejected before the word score lands.
	if err := s.RecordMemoryScore(5); err == nil {
		t.Error("memory score accepted before word stage completed")
	}
	if err := s.RecordReactionTime(300); err == nil {
		t.Error("reaction time accepted before word stage completed")
	}

	if err := s.RecordWordScore(85); err != nil {
		t.Fatalf("word: %v", err)
	}
	if s.Stage() != StageMemory {
		t.Errorf("stage = %v after word, want StageMemory", s.Stage())
	}

	// The word field is write-once: a second write is out of order now.
	if err := s.RecordWordScore(90); err == nil {
		t.Error("second word score accepted")
	}
	if s.WordScore() != 85 {
		t.Errorf("WordScore = %d, want 85 (first write wins)", s.WordScore())
	}
}

func TestSession_RangeValidation(t *testing.T) {
	s := NewSession()
	if err := s.RecordWordScore(101); err == nil {
		t.Error("word score 101 accepted")
	}
	if err := s.RecordWordScore(-1); err == nil {
		t.Error("word score -1 accepted")
	}
	if s.Stage() != StageWord {
		t.Error("rejected score must not advance the stage")
	}

	s.RecordWordScore(50)
	if err := s.RecordMemoryScore(10); err == nil {
		t.Error("memory level 10 accepted")
	}

	s.RecordMemoryScore(9)
	if err := s.RecordReactionTime(-5); err == nil {
		t.Error("negative reaction time accepted")
	}
}

func TestAttachAudio_WavOnly(t *testing.T) {
	s := completedSession(t)

	err := s.AttachAudio("voice.mp3", []byte("data"))
	if !errors.Is(err, ErrNotWav) {
		t.Fatalf("err = %v, want ErrNotWav", err)
	}
	if s.Stage() != StageAudio {
		t.Error("rejected file must not advance the stage")
	}
	if s.Audio() != nil {
		t.Error("rejected file must not be stored")
	}

	if err := s.AttachAudio("/tmp/recordings/Voice.WAV", []byte("RIFF")); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if s.Stage() != StageSubmit {
		t.Errorf("stage = %v after attach, want StageSubmit", s.Stage())
	}
	if got := s.Audio().Filename; got != "Voice.WAV" {
		t.Errorf("stored filename = %q, want base name", got)
	}
}

func TestSkipAudio(t *testing.T) {
	s := completedSession(t)
	if err := s.SkipAudio(); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if s.Audio() != nil {
		t.Error("skipped session should carry no audio")
	}
	if s.Stage() != StageSubmit {
		t.Errorf("stage = %v, want StageSubmit", s.Stage())
	}
}

func TestSubmission_RoundTrip(t *testing.T) {
	s := completedSession(t)
	s.SkipAudio()

	sub, err := s.Submission()
	if err != nil {
		t.Fatalf("submission: %v", err)
	}
	if sub.WordScore != 85 || sub.MemoryScore != 6 || sub.ReactionTimeMs != 340 {
		t.Errorf("submission = %+v, want 85/6/340", sub)
	}
	if sub.Audio != nil {
		t.Error("submission must omit the audio part when none was attached")
	}
	if sub.ScreeningID != s.ID {
		t.Error("submission must carry the session ID")
	}
}

func TestSubmission_NotBeforeAudioResolved(t *testing.T) {
	s := completedSession(t)
	if _, err := s.Submission(); err == nil {
		t.Error("submission built before the audio step resolved")
	}
}

func TestBeginSubmit_NoDuplicateInFlight(t *testing.T) {
	s := completedSession(t)
	s.SkipAudio()

	if !s.BeginSubmit() {
		t.Fatal("first BeginSubmit should succeed")
	}
	if s.BeginSubmit() {
		t.Error("second BeginSubmit while in flight should be ignored")
	}

	// Failure preserves the session for a retry.
	s.SubmitFailed()
	if s.Stage() != StageSubmit {
		t.Error("failed submit must keep the session at the submit stage")
	}
	if !s.BeginSubmit() {
		t.Error("retry after failure should be allowed")
	}

	s.SubmitSucceeded()
	if s.Stage() != StageDone {
		t.Errorf("stage = %v after success, want StageDone", s.Stage())
	}
	if s.BeginSubmit() {
		t.Error("submit after success should be ignored")
	}
}

func TestSession_ScoresPreservedAcrossFailedSubmit(t *testing.T) {
	s := completedSession(t)
	s.SkipAudio()
	s.BeginSubmit()
	s.SubmitFailed()

	sub, err := s.Submission()
	if err != nil {
		t.Fatalf("submission after failure: %v", err)
	}
	if sub.WordScore != 85 || sub.MemoryScore != 6 || sub.ReactionTimeMs != 340 {
		t.Errorf("scores changed across failed submit: %+v", sub)
	}
}
