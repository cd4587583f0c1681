package screening

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tanmay/acuity/internal/assessment"
	"github.com/tanmay/acuity/internal/riskapi"
	"github.com/tanmay/acuity/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	screeningEvents  []store.ScreeningEventData
	taskEvents       []store.TaskEventData
	submissionEvents []store.SubmissionEventData
}

func (m *mockEventRepo) AppendScreening(_ context.Context, data store.ScreeningEventData) error {
	m.screeningEvents = append(m.screeningEvents, data)
	return nil
}
func (m *mockEventRepo) AppendTask(_ context.Context, data store.TaskEventData) error {
	m.taskEvents = append(m.taskEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	m.submissionEvents = append(m.submissionEvents, data)
	return nil
}
func (m *mockEventRepo) RecentSubmissions(_ context.Context, _ int) ([]*store.SubmissionRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runCmd executes a command tree synchronously, feeding this package's
// own messages back into the screen. Framework messages (cursor focus
// and the like) are dropped so the helper cannot loop on them.
func runCmd(s *ScreeningScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			runCmd(s, c)
		}
	case submitDoneMsg:
		_, next := s.Update(msg)
		runCmd(s, next)
	}
}

func testScreen() (*ScreeningScreen, *mockEventRepo, *riskapi.Mock) {
	repo := &mockEventRepo{}
	mock := riskapi.NewMock(riskapi.MockResult{
		Verdict: &riskapi.Verdict{
			Success:      true,
			RiskScore:    32.5,
			RiskCategory: "Low Risk",
		},
	})
	return New(repo, mock), repo, mock
}

// completeWordStage types the correct word and acknowledges the feedback.
func completeWordStage(t *testing.T, s *ScreeningScreen) {
	t.Helper()
	s.word.input.Model.SetValue(s.word.round.Word)
	s.Update(specialKey(tea.KeyEnter))
	if !s.word.answered {
		t.Fatal("word stage did not register the guess")
	}
	_, cmd := s.Update(keyPress(' '))
	runCmd(s, cmd)
	if s.session.Stage() != assessment.StageMemory {
		t.Fatalf("stage after word = %v, want memory", s.session.Stage())
	}
}

// failMemoryStage plays the board out and presses a wrong cell at level 1.
func failMemoryStage(t *testing.T, s *ScreeningScreen) {
	t.Helper()

	// Drive playback by hand until the board awaits input.
	for range 8 {
		s.Update(revealTickMsg{gen: s.memory.gen})
	}
	wrong := (s.memory.game.Sequence[0] + 1) % 9
	s.Update(keyPress(rune('1' + wrong)))
	if !s.memory.over {
		t.Fatal("memory stage did not end on mismatch")
	}
	_, cmd := s.Update(keyPress(' '))
	runCmd(s, cmd)
	if s.session.Stage() != assessment.StageReaction {
		t.Fatalf("stage after memory = %v, want reaction", s.session.Stage())
	}
}

// completeReactionStage begins a trial, fires the cue, and responds.
func completeReactionStage(t *testing.T, s *ScreeningScreen) {
	t.Helper()
	s.Update(keyPress(' '))
	s.Update(armMsg{gen: s.reaction.gen})
	s.Update(keyPress(' '))
	if !s.reaction.measured {
		t.Fatal("reaction stage did not measure")
	}
	_, cmd := s.Update(keyPress('x'))
	runCmd(s, cmd)
	if s.session.Stage() != assessment.StageAudio {
		t.Fatalf("stage after reaction = %v, want audio", s.session.Stage())
	}
}

func TestScreeningScreen_Title(t *testing.T) {
	s, _, _ := testScreen()
	if s.Title() != "Screening" {
		t.Errorf("Title = %q, want %q", s.Title(), "Screening")
	}
}

func TestScreeningScreen_StepFollowsStage(t *testing.T) {
	s, _, _ := testScreen()
	if s.Step() != "Step 1 of 4" {
		t.Errorf("initial step = %q, want %q", s.Step(), "Step 1 of 4")
	}

	runCmd(s, s.Init())
	completeWordStage(t, s)
	if s.Step() != "Step 2 of 4" {
		t.Errorf("step after word = %q, want %q", s.Step(), "Step 2 of 4")
	}
}

func TestScreeningScreen_InitRecordsStart(t *testing.T) {
	s, repo, _ := testScreen()
	runCmd(s, s.Init())

	if len(repo.screeningEvents) != 1 {
		t.Fatalf("screening events = %d, want 1", len(repo.screeningEvents))
	}
	if repo.screeningEvents[0].Action != "start" {
		t.Errorf("action = %q, want start", repo.screeningEvents[0].Action)
	}
}

func TestScreeningScreen_EmptyGuessDoesNotAdvance(t *testing.T) {
	s, _, _ := testScreen()
	runCmd(s, s.Init())

	s.Update(specialKey(tea.KeyEnter))
	if s.word.answered {
		t.Error("empty guess should not count as an answer")
	}
	if s.session.Stage() != assessment.StageWord {
		t.Errorf("stage = %v, want word", s.session.Stage())
	}
}

func TestScreeningScreen_WordStageRecordsTaskEvent(t *testing.T) {
	s, repo, _ := testScreen()
	runCmd(s, s.Init())

	completeWordStage(t, s)

	if len(repo.taskEvents) != 1 {
		t.Fatalf("task events = %d, want 1", len(repo.taskEvents))
	}
	ev := repo.taskEvents[0]
	if ev.Task != "word" {
		t.Errorf("task = %q, want word", ev.Task)
	}
	if ev.Score != 100 {
		t.Errorf("score = %d, want 100 for a correct word", ev.Score)
	}
}

func TestScreeningScreen_StaleRevealTickIgnored(t *testing.T) {
	s, _, _ := testScreen()
	runCmd(s, s.Init())
	completeWordStage(t, s)

	before := s.memory.grid.Lit
	s.Update(revealTickMsg{gen: s.memory.gen - 1})
	if s.memory.grid.Lit != before {
		t.Error("stale reveal tick changed the board")
	}
}

func TestScreeningScreen_FullRunSubmitsVerdict(t *testing.T) {
	s, repo, mock := testScreen()
	runCmd(s, s.Init())

	completeWordStage(t, s)
	failMemoryStage(t, s)
	completeReactionStage(t, s)

	// Skip the speech sample: empty path + enter.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	runCmd(s, cmd)

	if s.session.Stage() != assessment.StageDone {
		t.Fatalf("stage = %v, want done", s.session.Stage())
	}
	if s.submit.verdict == nil || s.submit.verdict.RiskScore != 32.5 {
		t.Error("verdict not captured")
	}
	if mock.CallCount() != 1 {
		t.Errorf("analyze calls = %d, want 1", mock.CallCount())
	}

	sub := mock.Calls[0]
	if sub.WordScore != 100 || sub.MemoryScore != 0 {
		t.Errorf("submitted scores = %d/%d, want 100/0", sub.WordScore, sub.MemoryScore)
	}
	if sub.Audio != nil {
		t.Error("skipped audio should not be attached")
	}

	// start + end lifecycle events.
	if len(repo.screeningEvents) != 2 {
		t.Fatalf("screening events = %d, want 2", len(repo.screeningEvents))
	}
	end := repo.screeningEvents[1]
	if end.Action != "end" || end.WordScore != 100 {
		t.Errorf("end event = %+v", end)
	}
}

func TestScreeningScreen_RetryAfterFailedSubmit(t *testing.T) {
	repo := &mockEventRepo{}
	mock := riskapi.NewMock(
		riskapi.MockResult{Err: &riskapi.ErrUnavailable{Status: 503}},
		riskapi.MockResult{Verdict: &riskapi.Verdict{Success: true, RiskScore: 10, RiskCategory: "Low Risk"}},
	)
	s := New(repo, mock)
	runCmd(s, s.Init())

	completeWordStage(t, s)
	failMemoryStage(t, s)
	completeReactionStage(t, s)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	runCmd(s, cmd)

	if s.submit.err == nil {
		t.Fatal("expected a submit error")
	}
	if s.session.Stage() != assessment.StageSubmit {
		t.Fatalf("stage = %v, want submit after failure", s.session.Stage())
	}

	_, cmd = s.Update(keyPress('r'))
	runCmd(s, cmd)

	if s.session.Stage() != assessment.StageDone {
		t.Errorf("stage = %v, want done after retry", s.session.Stage())
	}
	if mock.CallCount() != 2 {
		t.Errorf("analyze calls = %d, want 2", mock.CallCount())
	}
}

func TestScreeningScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testScreen()
	runCmd(s, s.Init())

	handled, _ := s.HandleEsc()
	if !handled || !s.confirmQuit {
		t.Fatal("expected quit confirmation mid-screening")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}

	s.HandleEsc()
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after confirming abandon")
	}
}

func TestScreeningScreen_EscPassesThroughWhenDone(t *testing.T) {
	s, _, _ := testScreen()
	runCmd(s, s.Init())

	completeWordStage(t, s)
	failMemoryStage(t, s)
	completeReactionStage(t, s)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	runCmd(s, cmd)

	handled, _ := s.HandleEsc()
	if handled {
		t.Error("Esc should pop normally once the verdict is shown")
	}
}
