package riskapi

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tanmay/acuity/internal/store"
)

// LoggingClient is a decorator that records every submission attempt as
// an event in the local log.
type LoggingClient struct {
	inner     Client
	eventRepo store.EventRepo
}

// WithLogging wraps a Client with event logging.
func WithLogging(c Client, repo store.EventRepo) Client {
	return &LoggingClient{inner: c, eventRepo: repo}
}

func (l *LoggingClient) Analyze(ctx context.Context, sub Submission) (*Verdict, error) {
	start := time.Now()

	verdict, err := l.inner.Analyze(ctx, sub)

	data := store.SubmissionEventData{
		ScreeningID:    sub.ScreeningID,
		WordScore:      sub.WordScore,
		MemoryScore:    sub.MemoryScore,
		ReactionMs:     sub.ReactionTimeMs,
		SpeechAttached: sub.Audio != nil,
		Success:        err == nil,
		LatencyMs:      time.Since(start).Milliseconds(),
	}

	if verdict != nil {
		data.RiskScore = verdict.RiskScore
		data.RiskCategory = verdict.RiskCategory
		data.CognitiveRisk = verdict.CognitiveRisk
		data.SpeechAnalyzed = verdict.SpeechAnalyzed
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the submission if logging fails.
	if logErr := l.eventRepo.AppendSubmission(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log submission event: %v\n", logErr)
	}

	return verdict, err
}

func (l *LoggingClient) Health(ctx context.Context) error {
	return l.inner.Health(ctx)
}
