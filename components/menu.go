package components

import "github.com/yohamta/donburi"

// SelectionData is a vertical list of options with a blinking cursor.
type SelectionData struct {
	Selected    int
	NumOptions  int
	BlinkTimer  int  // frames since the screen opened
	BlinkHidden bool // selected option is currently blanked
}

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuQuit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectionData
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
