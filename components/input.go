package components

import (
	cfg "github.com/automoto/moveable/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// MouseData is the pointer state sampled this frame.
type MouseData struct {
	X, Y        int
	Buttons     int  // bitmask, see cfg.MouseButtonPrimary
	JustPressed bool // any button went down this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Mouse    MouseData
}

var Input = donburi.NewComponentType[InputData]()
