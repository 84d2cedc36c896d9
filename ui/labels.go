package ui

import "fmt"

// FinalScoreLabel is the score line of the results panel.
func FinalScoreLabel(score int) string {
	return fmt.Sprintf("Final Score: %d", score)
}

// OptionLabel renders one menu option. The selected option is marked, and
// blanked while its blink is in the hidden phase.
func OptionLabel(option string, selected, hidden bool) string {
	if !selected {
		return option
	}
	if hidden {
		return ""
	}
	return "> " + option + " <"
}
