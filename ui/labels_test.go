package ui

import "testing"

func TestFinalScoreLabel(t *testing.T) {
	if got := FinalScoreLabel(30); got != "Final Score: 30" {
		t.Errorf("FinalScoreLabel(30) = %q", got)
	}
}

func TestOptionLabel(t *testing.T) {
	tests := []struct {
		name     string
		selected bool
		hidden   bool
		want     string
	}{
		{"unselected", false, false, "Quit"},
		{"unselected ignores blink", false, true, "Quit"},
		{"selected visible", true, false, "> Quit <"},
		{"selected hidden", true, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptionLabel("Quit", tt.selected, tt.hidden); got != tt.want {
				t.Errorf("OptionLabel = %q, want %q", got, tt.want)
			}
		})
	}
}
