package screening

import (
	"github.com/tanmay/acuity/internal/riskapi"
)

// Timer messages carry the generation they were scheduled under. A stage
// restart or abandon bumps the generation, so ticks from a cancelled
// schedule arrive with a stale generation and are discarded.

// revealTickMsg advances the memory board playback: highlight the next
// cell, or clear the current highlight during the inter-cell gap.
type revealTickMsg struct {
	gen int
}

// pressFadeMsg clears the press feedback highlight on the memory board.
type pressFadeMsg struct {
	gen int
}

// nextLevelMsg starts playback of the next memory level after the
// level-cleared pause.
type nextLevelMsg struct {
	gen int
}

// armMsg fires the reaction cue after the randomized delay.
type armMsg struct {
	gen int
}

// submitDoneMsg reports the outcome of a submission attempt.
type submitDoneMsg struct {
	Verdict *riskapi.Verdict
	Err     error
}
