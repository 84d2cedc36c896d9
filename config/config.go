package config

import (
	"image/color"
	"time"

	"github.com/automoto/dashdodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  int // pixels per frame
	StartX int
	StartY int

	// Dimensions
	Width  int
	Height int

	Color color.RGBA
}

// EnemySpawn is the initial placement of one pooled enemy.
type EnemySpawn struct {
	X, Y      int
	BaseSpeed float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Width  int
	Height int

	// Spawns fixes both the pool size and the update order.
	Spawns []EnemySpawn

	Tuning gamemath.EnemyTuning
	Color  color.RGBA
}

// CollectibleConfig contains pickup configuration
type CollectibleConfig struct {
	Width        int
	Height       int
	RespawnDelay time.Duration
	Points       int
	Color        color.RGBA

	// Pop-in effect on spawn
	PopDuration float32 // seconds
}

// BackgroundConfig describes the generated playfield backdrop
type BackgroundConfig struct {
	FillColor   color.RGBA
	GridColor   color.RGBA
	GridSpacing int
	GridWidth   float32
}

// HUDConfig contains in-game overlay configuration
type HUDConfig struct {
	ScoreX    int
	ScoreY    int
	TextColor color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title             string
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemGap       float64
	MenuOptions       []string
	BlinkFrames       int // frames between blink toggles of the selected option
	HintBottomMargin  float64
	KeyboardHint      string
	GamepadHint       string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	Title           string
	TitleColor      color.RGBA
	ScoreColor      color.RGBA
	TextColorNormal color.RGBA
	TitleY          float64
	ScoreY          float64
	MenuStartY      float64
	MenuItemGap     float64
	MenuOptions     []string
	BlinkFrames     int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Skip menu and go directly to game
	Seed     int64 // 0 = seed from the clock
	Mute     bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Background BackgroundConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	Crimson   = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	Gold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	DeepBlue  = color.RGBA{R: 40, G: 60, B: 120, A: 255}
	GridBlue  = color.RGBA{R: 60, G: 80, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Dash Dodge",
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:  5,
		StartX: 100,
		StartY: 100,
		Width:  48,
		Height: 48,
		Color:  Cyan,
	}

	Enemy = EnemyConfig{
		Width:  48,
		Height: 48,
		Spawns: []EnemySpawn{
			{X: 800, Y: 100, BaseSpeed: 2},
			{X: 950, Y: 300, BaseSpeed: 3},
			{X: 1100, Y: 500, BaseSpeed: 4},
		},
		Tuning: gamemath.DefaultEnemyTuning(),
		Color:  Crimson,
	}

	Collectible = CollectibleConfig{
		Width:        48,
		Height:       48,
		RespawnDelay: 2 * time.Second,
		Points:       10,
		Color:        Gold,
		PopDuration:  0.25,
	}

	Background = BackgroundConfig{
		FillColor:   DeepBlue,
		GridColor:   GridBlue,
		GridSpacing: 80,
		GridWidth:   2,
	}

	HUD = HUDConfig{
		ScoreX:    10,
		ScoreY:    10,
		TextColor: White,
	}

	Menu = MenuConfig{
		Title:             "Dash Dodge",
		TitleColor:        White,
		TextColorNormal:   LightGray,
		TextColorSelected: Yellow,
		TitleY:            120,
		MenuStartY:        300,
		MenuItemGap:       60,
		MenuOptions:       []string{"Start Game", "Quit"},
		BlinkFrames:       30,
		HintBottomMargin:  48,
		KeyboardHint:      "Arrows: Navigate   Enter: Select",
		GamepadHint:       "Left Stick/D-Pad: Navigate   A: Select",
	}

	GameOver = GameOverConfig{
		Title:           "Game Over",
		TitleColor:      Red,
		ScoreColor:      White,
		TextColorNormal: Yellow,
		TitleY:          120,
		ScoreY:          220,
		MenuStartY:      350,
		MenuItemGap:     60,
		MenuOptions:     []string{"Restart", "Quit"},
		BlinkFrames:     30,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
