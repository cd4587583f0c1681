package theme

import (
	"image/color"
	"testing"
)

func TestRiskColor(t *testing.T) {
	tests := []struct {
		category string
		want     color.Color
	}{
		{"Low Risk", RiskLow},
		{"Moderate Risk", RiskModerate},
		{"High Risk", RiskHigh},
		{"something unexpected", RiskHigh},
	}

	for _, tt := range tests {
		if got := RiskColor(tt.category); got != tt.want {
			t.Errorf("RiskColor(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}
