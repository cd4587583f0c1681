package screening

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/ui/components"
	"github.com/tanmay/acuity/internal/ui/theme"
)

// audioModel drives the optional speech-sample stage: point at a .wav
// recording on disk, or skip.
type audioModel struct {
	input    components.TextInput
	errMsg   string
	filename string
	data     []byte
	skipped  bool
}

func newAudioModel() *audioModel {
	return &audioModel{
		input: components.NewTextInput("Path to a .wav recording (optional)", 0),
	}
}

func (a *audioModel) init() tea.Cmd {
	return a.input.Init()
}

// update returns (cmd, done). done means the stage resolved: either a
// file was loaded or the user skipped.
func (a *audioModel) update(msg tea.Msg) (tea.Cmd, bool) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey && kmsg.String() == "enter" {
		path := strings.TrimSpace(a.input.Value())
		if path == "" {
			a.skipped = true
			return nil, true
		}
		return nil, a.loadFile(path)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd, false
}

func (a *audioModel) loadFile(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		a.errMsg = "Only .wav recordings are accepted."
		a.input.Submit(false)
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.errMsg = fmt.Sprintf("Could not read file: %v", err)
		a.input.Submit(false)
		return false
	}

	a.filename = filepath.Base(path)
	a.data = data
	a.input.Submit(true)
	return true
}

func (a *audioModel) view(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Render("Speech Sample"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("A short voice recording improves the analysis"))
	b.WriteString("\n\n")

	body := "Enter the path to a .wav recording of your voice,\n" +
		"or press Enter with an empty field to skip."
	b.WriteString(components.TaskCard(
		lipgloss.NewStyle().Foreground(theme.Text).Render(body), cw))
	b.WriteString("\n\n")

	b.WriteString(a.input.View())

	if a.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
