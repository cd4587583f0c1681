package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tanmay/acuity/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.name }
func (s *fakeScreen) Title() string                           { return s.name }

func TestPushAndPop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	hist := &fakeScreen{name: "history"}
	r.Push(hist)

	if r.Depth() != 2 {
		t.Fatalf("depth after push = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "history" {
		t.Errorf("active = %q, want history", r.Active().Title())
	}
	if !hist.initRan {
		t.Error("pushed screen Init() did not run")
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth after pop at bottom = %d, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "welcome"})

	home := &fakeScreen{name: "home"}
	r.Replace(home)

	if r.Depth() != 1 {
		t.Fatalf("depth after replace = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
	if !home.initRan {
		t.Error("replaced screen Init() did not run")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "screening"}})
	if r.Active().Title() != "screening" {
		t.Fatalf("active after PushScreenMsg = %q", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &fakeScreen{name: "summary"}})
	if r.Depth() != 2 {
		t.Errorf("depth after ReplaceScreenMsg = %d, want 2", r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active after PopScreenMsg = %q, want home", r.Active().Title())
	}
}
