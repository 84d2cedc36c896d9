package systems

import (
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/yohamta/donburi/ecs"
)

// Navigate moves the cursor with wrap-around. It reports whether the
// selection changed.
func Navigate(sel *components.SelectionData, up, down bool) bool {
	if sel.NumOptions <= 0 {
		return false
	}
	before := sel.Selected
	if up {
		sel.Selected = (sel.Selected - 1 + sel.NumOptions) % sel.NumOptions
	}
	if down {
		sel.Selected = (sel.Selected + 1) % sel.NumOptions
	}
	return sel.Selected != before
}

// AdvanceBlink counts one frame and toggles the selected option's
// visibility every blinkFrames frames.
func AdvanceBlink(sel *components.SelectionData, blinkFrames int) {
	sel.BlinkTimer++
	if blinkFrames > 0 && sel.BlinkTimer%blinkFrames == 0 {
		sel.BlinkHidden = !sel.BlinkHidden
	}
}

// updateSelection applies one frame of menu input to sel and reports
// whether the current option was chosen.
func updateSelection(e *ecs.ECS, sel *components.SelectionData, blinkFrames int) bool {
	input := getOrCreateInput(e)

	up := GetAction(input, cfg.ActionMenuUp).JustPressed
	down := GetAction(input, cfg.ActionMenuDown).JustPressed
	if Navigate(sel, up, down) {
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	AdvanceBlink(sel, blinkFrames)

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		return true
	}
	return false
}
