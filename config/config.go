package config

import (
	"image/color"

	"github.com/automoto/moveable/shared/motion"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// MoveableConfig contains the moveable element's appearance and spawn point
type MoveableConfig struct {
	Width  float64
	Height float64
	StartX float64
	StartY float64

	Color        color.RGBA
	OutlineColor color.RGBA
}

// MotionConfig contains integrator tuning
type MotionConfig struct {
	BaseSpeed       float64          // pixels per frame before timescale
	TimescaleFactor float64          // multiplier on BaseSpeed
	DeltaMode       motion.DeltaMode // how frame timestamps become a scale factor
}

// PulseConfig contains the placement pulse effect
type PulseConfig struct {
	Duration   float32 // seconds
	StartScale float32 // outline growth at the start of the pulse (px)
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	FontSize   float64
	TextColor  color.RGBA
	BgColor    color.RGBA
	BoundsLine color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogInput   bool // Log every key and mouse event
	DrawBounds bool // Outline the valid-bounds area
}

// Global configuration instances
var C *Config
var Moveable MoveableConfig
var Motion MotionConfig
var Pulse PulseConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background   = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "moveable",
	}

	Moveable = MoveableConfig{
		Width:        50,
		Height:       50,
		StartX:       0,
		StartY:       0,
		Color:        Orange,
		OutlineColor: BrightOrange,
	}

	Motion = MotionConfig{
		BaseSpeed:       1.0,
		TimescaleFactor: motion.DefaultTimescale,
		DeltaMode:       motion.DeltaRatio,
	}

	Pulse = PulseConfig{
		Duration:   0.25,
		StartScale: 8,
	}

	HUD = HUDConfig{
		Margin:     8,
		LineHeight: 16,
		FontSize:   12,
		TextColor:  White,
		BgColor:    BlackOverlay,
		BoundsLine: DarkBlue,
	}

	Debug = DebugConfig{
		LogInput:   false,
		DrawBounds: false,
	}
}
