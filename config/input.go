package config

import (
	"github.com/automoto/moveable/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveUp
	ActionMoveRight
	ActionMoveDown
	ActionToggleHUD
	ActionToggleFullscreen
	ActionCycleResolution
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// Mouse button masks, matching MouseEvent.buttons
const (
	MouseButtonPrimary   = 1
	MouseButtonSecondary = 2
	MouseButtonMiddle    = 4
)

// InputBinding represents the keys bound to an action.
// Direction actions also carry the key code the tracker understands.
type InputBinding struct {
	Keys []ebiten.Key
	Code motion.KeyCode
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// PlaceButtons is the exact button mask that places the moveable.
	PlaceButtons int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		PlaceButtons: MouseButtonPrimary,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft},
				Code: motion.KeyLeft,
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp},
				Code: motion.KeyUp,
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight},
				Code: motion.KeyRight,
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown},
				Code: motion.KeyDown,
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF},
			},
			ActionCycleResolution: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
