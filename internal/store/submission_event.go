package store

import (
	"context"
	"fmt"

	"github.com/tanmay/acuity/ent"
	"github.com/tanmay/acuity/ent/submissionevent"
)

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetScreeningID(data.ScreeningID).
		SetWordScore(data.WordScore).
		SetMemoryScore(data.MemoryScore).
		SetReactionMs(data.ReactionMs).
		SetSpeechAttached(data.SpeechAttached).
		SetSuccess(data.Success).
		SetRiskScore(data.RiskScore).
		SetRiskCategory(data.RiskCategory).
		SetCognitiveRisk(data.CognitiveRisk).
		SetSpeechAnalyzed(data.SpeechAnalyzed).
		SetLatencyMs(data.LatencyMs).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSubmissions(ctx context.Context, limit int) ([]*SubmissionRecord, error) {
	q := r.client.SubmissionEvent.Query().
		Order(ent.Desc(submissionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	records := make([]*SubmissionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, &SubmissionRecord{
			Timestamp: e.Timestamp,
			SubmissionEventData: SubmissionEventData{
				ScreeningID:    e.ScreeningID,
				WordScore:      e.WordScore,
				MemoryScore:    e.MemoryScore,
				ReactionMs:     e.ReactionMs,
				SpeechAttached: e.SpeechAttached,
				Success:        e.Success,
				RiskScore:      e.RiskScore,
				RiskCategory:   e.RiskCategory,
				CognitiveRisk:  e.CognitiveRisk,
				SpeechAnalyzed: e.SpeechAnalyzed,
				LatencyMs:      e.LatencyMs,
				ErrorMessage:   e.ErrorMessage,
			},
		})
	}
	return records, nil
}
