package reaction

import (
	"math/rand/v2"
	"testing"
	"time"
)

// fakeClock returns a controllable clock function.
func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	current := start
	now := func() time.Time { return current }
	advance := func(d time.Duration) { current = current.Add(d) }
	return now, advance
}

func newTrial(seed uint64, now func() time.Time) *Trial {
	return New(rand.New(rand.NewPCG(seed, 0)), now)
}

func TestBegin_DelayInRange(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		tr := newTrial(seed, nil)
		d := tr.Begin()
		if d < MinDelay || d >= MaxDelay {
			t.Fatalf("seed %d: delay %v outside [%v, %v)", seed, d, MinDelay, MaxDelay)
		}
		if tr.Stage != StageWaiting {
			t.Fatalf("Stage = %v after Begin, want StageWaiting", tr.Stage)
		}
	}
}

func TestBegin_OnlyFromReady(t *testing.T) {
	tr := newTrial(1, nil)
	tr.Begin()
	if d := tr.Begin(); d != 0 {
		t.Errorf("second Begin = %v, want 0", d)
	}
}

func TestRespond_FalseStart(t *testing.T) {
	now, _ := fakeClock(time.Unix(1000, 0))
	tr := newTrial(1, now)
	tr.Begin()

	if got := tr.Respond(); got != OutcomeFalseStart {
		t.Fatalf("Respond while waiting = %v, want OutcomeFalseStart", got)
	}
	if !tr.TooEarly {
		t.Error("TooEarly should be set")
	}
	if tr.Stage != StageReady {
		t.Errorf("Stage = %v, want StageReady", tr.Stage)
	}
	if tr.Elapsed != 0 {
		t.Error("no time may be recorded for a false start")
	}
}

func TestRespond_MeasuresElapsed(t *testing.T) {
	now, advance := fakeClock(time.Unix(1000, 0))
	tr := newTrial(1, now)

	tr.Begin()
	tr.Arm()
	advance(340 * time.Millisecond)

	if got := tr.Respond(); got != OutcomeMeasured {
		t.Fatalf("Respond while armed = %v, want OutcomeMeasured", got)
	}
	if tr.Millis() != 340 {
		t.Errorf("Millis() = %d, want 340", tr.Millis())
	}
	if tr.Stage != StageMeasured {
		t.Errorf("Stage = %v, want StageMeasured", tr.Stage)
	}
}

func TestRespond_RestartAfterFalseStart(t *testing.T) {
	now, advance := fakeClock(time.Unix(1000, 0))
	tr := newTrial(1, now)

	tr.Begin()
	tr.Respond() // false start

	if d := tr.Begin(); d == 0 {
		t.Fatal("Begin after false start should restart the trial")
	}
	if tr.TooEarly {
		t.Error("TooEarly should clear on restart")
	}
	tr.Arm()
	advance(250 * time.Millisecond)
	if got := tr.Respond(); got != OutcomeMeasured {
		t.Errorf("Respond = %v, want OutcomeMeasured", got)
	}
}

func TestArm_StaleCallIgnored(t *testing.T) {
	tr := newTrial(1, nil)
	tr.Begin()
	tr.Respond() // back to ready

	tr.Arm()
	if tr.Stage != StageReady {
		t.Errorf("stale Arm changed stage to %v", tr.Stage)
	}
}

func TestRespond_IgnoredWhenReadyOrMeasured(t *testing.T) {
	tr := newTrial(1, nil)
	if got := tr.Respond(); got != OutcomeIgnored {
		t.Errorf("Respond while ready = %v, want OutcomeIgnored", got)
	}

	tr.Begin()
	tr.Arm()
	tr.Respond()
	if got := tr.Respond(); got != OutcomeIgnored {
		t.Errorf("Respond while measured = %v, want OutcomeIgnored", got)
	}
}

func TestBand(t *testing.T) {
	cases := []struct {
		ms   int
		want string
	}{
		{150, "Exceptional"},
		{199, "Exceptional"},
		{200, "Quick"},
		{340, "Average"},
		{450, "Below Average"},
		{500, "Slow"},
		{900, "Slow"},
	}
	for _, c := range cases {
		if got := Band(time.Duration(c.ms) * time.Millisecond); got != c.want {
			t.Errorf("Band(%dms) = %q, want %q", c.ms, got, c.want)
		}
	}
}
