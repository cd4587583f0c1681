package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/tanmay/acuity/internal/ui/theme"
)

func TestProgressBarView(t *testing.T) {
	bar := NewProgressBar("Risk", 0.5, true, 40)
	bar.Color = theme.RiskColor("High Risk")

	out := bar.View()
	if !strings.Contains(out, "Risk") {
		t.Errorf("expected label in output, got %q", out)
	}
	if !strings.Contains(out, "50%") {
		t.Errorf("expected percentage in output, got %q", out)
	}
	if w := lipgloss.Width(out); w > 40 {
		t.Errorf("bar width = %d, want <= 40", w)
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	for _, pct := range []float64{-0.5, 1.5} {
		bar := NewProgressBar("", pct, false, 20)
		out := bar.View()
		if w := lipgloss.Width(out); w > 20 {
			t.Errorf("percent %v: bar width = %d, want <= 20", pct, w)
		}
	}
}
