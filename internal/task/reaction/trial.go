// Package reaction implements the reaction-time task: wait for an
// unpredictable cue, respond as fast as possible, and measure the gap.
// Responding before the cue is a false start and resets the trial.
package reaction

import (
	"math/rand/v2"
	"time"
)

// Arm delay bounds: the cue fires at a uniform random point in
// [MinDelay, MaxDelay).
const (
	MinDelay = 2000 * time.Millisecond
	MaxDelay = 5000 * time.Millisecond
)

// Stage is the trial's state machine stage.
type Stage int

const (
	StageReady Stage = iota
	StageWaiting
	StageArmed
	StageMeasured
)

// Outcome describes the effect of a user response.
type Outcome int

const (
	// OutcomeIgnored: the response arrived in ready or measured and did
	// nothing.
	OutcomeIgnored Outcome = iota

	// OutcomeFalseStart: the response arrived before the cue. The trial
	// is back in ready; the caller must cancel the pending arm timer.
	OutcomeFalseStart

	// OutcomeMeasured: the response arrived after the cue; Elapsed holds
	// the reaction time and the trial is terminal.
	OutcomeMeasured
)

// Trial is a single reaction measurement. One trial is active at a time;
// a false start reuses the same trial rather than recording anything.
type Trial struct {
	rng *rand.Rand
	now func() time.Time

	Stage    Stage
	TooEarly bool
	Elapsed  time.Duration

	armedAt time.Time
}

// New creates a ready trial. A nil clock defaults to time.Now.
func New(rng *rand.Rand, now func() time.Time) *Trial {
	if now == nil {
		now = time.Now
	}
	return &Trial{rng: rng, now: now}
}

// Begin moves ready → waiting and returns the randomized delay after which
// the caller should invoke Arm. Returns 0 if the trial is not ready.
func (t *Trial) Begin() time.Duration {
	if t.Stage != StageReady {
		return 0
	}
	t.Stage = StageWaiting
	t.TooEarly = false
	span := int64((MaxDelay - MinDelay) / time.Millisecond)
	return MinDelay + time.Duration(t.rng.Int64N(span))*time.Millisecond
}

// Arm records the cue timestamp and moves waiting → armed. A stale call
// (after a false start already returned the trial to ready) is a no-op;
// callers are still expected to cancel their timer so this cannot happen.
func (t *Trial) Arm() {
	if t.Stage != StageWaiting {
		return
	}
	t.armedAt = t.now()
	t.Stage = StageArmed
}

// Respond handles a user response in any stage. Before the cue it is a
// false start; after the cue it measures and terminates the trial.
func (t *Trial) Respond() Outcome {
	switch t.Stage {
	case StageWaiting:
		t.TooEarly = true
		t.Stage = StageReady
		return OutcomeFalseStart
	case StageArmed:
		t.Elapsed = t.now().Sub(t.armedAt)
		if t.Elapsed < 0 {
			t.Elapsed = 0
		}
		t.Stage = StageMeasured
		return OutcomeMeasured
	default:
		return OutcomeIgnored
	}
}

// Millis is the measured reaction time in whole milliseconds.
func (t *Trial) Millis() int {
	return int(t.Elapsed.Milliseconds())
}

// Band classifies a reaction time for display. It has no effect on the
// emitted score.
func Band(elapsed time.Duration) string {
	switch {
	case elapsed < 200*time.Millisecond:
		return "Exceptional"
	case elapsed < 300*time.Millisecond:
		return "Quick"
	case elapsed < 400*time.Millisecond:
		return "Average"
	case elapsed < 500*time.Millisecond:
		return "Below Average"
	default:
		return "Slow"
	}
}
