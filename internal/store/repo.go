package store

import (
	"context"
	"time"
)

// ScreeningEventData captures a screening lifecycle event.
// Scores and duration are meaningful on the "end" action only.
type ScreeningEventData struct {
	ScreeningID  string
	Action       string // "start" or "end"
	WordScore    int
	MemoryScore  int
	ReactionMs   int
	DurationSecs int
}

// TaskEventData captures one task's terminal score.
type TaskEventData struct {
	ScreeningID string
	Task        string // "word", "memory" or "reaction"
	Score       int
	DurationMs  int
}

// SubmissionEventData captures one submission attempt: the payload that
// was sent and the verdict (or failure) that came back.
type SubmissionEventData struct {
	ScreeningID    string
	WordScore      int
	MemoryScore    int
	ReactionMs     int
	SpeechAttached bool

	Success        bool
	RiskScore      float64
	RiskCategory   string
	CognitiveRisk  float64
	SpeechAnalyzed bool
	LatencyMs      int64
	ErrorMessage   string
}

// SubmissionRecord is a stored submission event with its timestamp,
// as returned by history queries.
type SubmissionRecord struct {
	Timestamp time.Time
	SubmissionEventData
}

// EventRepo provides append and query access to the screening event log.
// The log is observability around the assessment engine: the engine never
// reads it back mid-run.
type EventRepo interface {
	// AppendScreening records a screening start or end.
	AppendScreening(ctx context.Context, data ScreeningEventData) error

	// AppendTask records a task's terminal score.
	AppendTask(ctx context.Context, data TaskEventData) error

	// AppendSubmission records a submission attempt and its outcome.
	AppendSubmission(ctx context.Context, data SubmissionEventData) error

	// RecentSubmissions returns the most recent submission events,
	// newest first. limit <= 0 means no limit.
	RecentSubmissions(ctx context.Context, limit int) ([]*SubmissionRecord, error)
}
