package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendScreening(ctx context.Context, data ScreeningEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ScreeningEvent.Create().
		SetSequence(seqNum).
		SetScreeningID(data.ScreeningID).
		SetAction(data.Action).
		SetWordScore(data.WordScore).
		SetMemoryScore(data.MemoryScore).
		SetReactionMs(data.ReactionMs).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save screening event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTask(ctx context.Context, data TaskEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TaskEvent.Create().
		SetSequence(seqNum).
		SetScreeningID(data.ScreeningID).
		SetTask(data.Task).
		SetScore(data.Score).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save task event: %w", err)
	}
	return nil
}
