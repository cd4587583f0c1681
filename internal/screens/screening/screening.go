package screening

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/assessment"
	"github.com/tanmay/acuity/internal/riskapi"
	"github.com/tanmay/acuity/internal/router"
	"github.com/tanmay/acuity/internal/screen"
	"github.com/tanmay/acuity/internal/store"
	"github.com/tanmay/acuity/internal/ui/layout"
	"github.com/tanmay/acuity/internal/ui/theme"
)

const submitTimeout = 60 * time.Second

// tick schedules msg after d.
func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// ScreeningScreen runs one full screening: the three timed tasks, the
// optional speech sample, and the submission to the risk service.
type ScreeningScreen struct {
	session    *assessment.Session
	eventRepo  store.EventRepo
	riskClient riskapi.Client

	word     *wordModel
	memory   *memoryModel
	reaction *reactionModel
	audio    *audioModel
	submit   *submitModel

	confirmQuit bool
	taskStart   time.Time
}

var _ screen.Screen = (*ScreeningScreen)(nil)
var _ screen.KeyHintProvider = (*ScreeningScreen)(nil)
var _ screen.StepProvider = (*ScreeningScreen)(nil)
var _ screen.EscHandler = (*ScreeningScreen)(nil)

// New creates a ScreeningScreen with injected dependencies.
func New(eventRepo store.EventRepo, riskClient riskapi.Client) *ScreeningScreen {
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	return &ScreeningScreen{
		session:    assessment.NewSession(),
		eventRepo:  eventRepo,
		riskClient: riskClient,
		word:       newWordModel(rng),
		memory:     newMemoryModel(rng),
		reaction:   newReactionModel(rng),
		audio:      newAudioModel(),
		submit:     &submitModel{},
	}
}

func (s *ScreeningScreen) Init() tea.Cmd {
	s.taskStart = time.Now()
	return tea.Batch(
		s.appendScreeningEvent("start"),
		s.word.init(),
	)
}

func (s *ScreeningScreen) Title() string {
	return "Screening"
}

func (s *ScreeningScreen) Step() string {
	switch s.session.Stage() {
	case assessment.StageWord:
		return "Step 1 of 4"
	case assessment.StageMemory:
		return "Step 2 of 4"
	case assessment.StageReaction:
		return "Step 3 of 4"
	case assessment.StageAudio:
		return "Step 4 of 4"
	case assessment.StageSubmit:
		return "Submitting"
	default:
		return ""
	}
}

func (s *ScreeningScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}

	switch s.session.Stage() {
	case assessment.StageWord, assessment.StageAudio:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case assessment.StageMemory:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Select cell"},
			{Key: "Esc", Description: "Abandon"},
		}
	case assessment.StageReaction:
		return []layout.KeyHint{
			{Key: "Space", Description: "React"},
			{Key: "Esc", Description: "Abandon"},
		}
	case assessment.StageSubmit:
		if s.submit.err != nil && !s.session.Submitting() {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "Esc", Description: "Abandon"},
			}
		}
		return nil
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Finish"},
		}
	}
}

// HandleEsc shows the abandon confirmation while a screening is in
// progress. Once the verdict is in, Esc pops back normally.
func (s *ScreeningScreen) HandleEsc() (bool, tea.Cmd) {
	if s.session.Stage() == assessment.StageDone {
		return false, nil
	}
	s.confirmQuit = !s.confirmQuit
	return true, nil
}

func (s *ScreeningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.confirmQuit {
		return s.updateConfirmQuit(msg)
	}

	if msg, ok := msg.(submitDoneMsg); ok {
		return s.handleSubmitDone(msg)
	}

	switch s.session.Stage() {
	case assessment.StageWord:
		cmd, done := s.word.update(msg)
		if done {
			return s, tea.Batch(cmd, s.finishWord())
		}
		return s, cmd

	case assessment.StageMemory:
		cmd, done := s.memory.update(msg)
		if done {
			return s, tea.Batch(cmd, s.finishMemory())
		}
		return s, cmd

	case assessment.StageReaction:
		cmd, done := s.reaction.update(msg)
		if done {
			return s, tea.Batch(cmd, s.finishReaction())
		}
		return s, cmd

	case assessment.StageAudio:
		cmd, done := s.audio.update(msg)
		if done {
			return s, tea.Batch(cmd, s.finishAudio())
		}
		return s, cmd

	case assessment.StageSubmit:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			if kmsg.String() == "r" && s.submit.err != nil && !s.session.Submitting() {
				return s, s.submitCmd()
			}
		}
		return s, nil

	case assessment.StageDone:
		if _, ok := msg.(tea.KeyMsg); ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

func (s *ScreeningScreen) updateConfirmQuit(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "y":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n", "esc":
		s.confirmQuit = false
	}
	return s, nil
}

func (s *ScreeningScreen) finishWord() tea.Cmd {
	score := s.word.score()
	if err := s.session.RecordWordScore(score); err != nil {
		return nil
	}
	taskCmd := s.appendTaskEvent("word", score)
	s.taskStart = time.Now()
	return tea.Batch(taskCmd, s.memory.init())
}

func (s *ScreeningScreen) finishMemory() tea.Cmd {
	score := s.memory.score()
	if err := s.session.RecordMemoryScore(score); err != nil {
		return nil
	}
	taskCmd := s.appendTaskEvent("memory", score)
	s.taskStart = time.Now()
	return tea.Batch(taskCmd, s.reaction.init())
}

func (s *ScreeningScreen) finishReaction() tea.Cmd {
	ms := s.reaction.score()
	if err := s.session.RecordReactionTime(ms); err != nil {
		return nil
	}
	taskCmd := s.appendTaskEvent("reaction", ms)
	s.taskStart = time.Now()
	return tea.Batch(taskCmd, s.audio.init())
}

func (s *ScreeningScreen) finishAudio() tea.Cmd {
	if s.audio.skipped {
		if err := s.session.SkipAudio(); err != nil {
			return nil
		}
	} else {
		if err := s.session.AttachAudio(s.audio.filename, s.audio.data); err != nil {
			s.audio.errMsg = err.Error()
			return nil
		}
	}
	return s.submitCmd()
}

func (s *ScreeningScreen) submitCmd() tea.Cmd {
	if !s.session.BeginSubmit() {
		return nil
	}
	s.submit.err = nil
	s.submit.attempts++

	sub, err := s.session.Submission()
	if err != nil {
		return func() tea.Msg { return submitDoneMsg{Err: err} }
	}

	client := s.riskClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		verdict, err := client.Analyze(ctx, sub)
		return submitDoneMsg{Verdict: verdict, Err: err}
	}
}

func (s *ScreeningScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.session.SubmitFailed()
		s.submit.err = msg.Err
		return s, nil
	}

	s.session.SubmitSucceeded()
	s.submit.verdict = msg.Verdict
	return s, s.appendScreeningEvent("end")
}

// appendScreeningEvent records a screening lifecycle event. Persistence
// failures never interrupt the screening itself.
func (s *ScreeningScreen) appendScreeningEvent(action string) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.ScreeningEventData{
		ScreeningID: s.session.ID,
		Action:      action,
	}
	if action == "end" {
		data.WordScore = s.session.WordScore()
		data.MemoryScore = s.session.MemoryScore()
		data.ReactionMs = s.session.ReactionTimeMs()
		data.DurationSecs = int(time.Since(s.session.StartedAt).Seconds())
	}
	repo := s.eventRepo
	return func() tea.Msg {
		_ = repo.AppendScreening(context.Background(), data)
		return nil
	}
}

func (s *ScreeningScreen) appendTaskEvent(task string, score int) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.TaskEventData{
		ScreeningID: s.session.ID,
		Task:        task,
		Score:       score,
		DurationMs:  int(time.Since(s.taskStart).Milliseconds()),
	}
	repo := s.eventRepo
	return func() tea.Msg {
		_ = repo.AppendTask(context.Background(), data)
		return nil
	}
}

func (s *ScreeningScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.confirmQuitView(width, height)
	}

	switch s.session.Stage() {
	case assessment.StageWord:
		return s.word.view(width, height)
	case assessment.StageMemory:
		return s.memory.view(width, height)
	case assessment.StageReaction:
		return s.reaction.view(width, height)
	case assessment.StageAudio:
		return s.audio.view(width, height)
	default:
		return s.submit.view(width, height, s.session.Submitting())
	}
}

func (s *ScreeningScreen) confirmQuitView(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Abandon this screening?") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Progress so far will be discarded.") + "\n\n" +
		fmt.Sprintf("%s  %s",
			theme.Good.Render("[Y] yes, abandon"),
			theme.Bad.Render("[N] keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
