package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PulseData is the outline flash played after a mouse placement.
type PulseData struct {
	Tween  *gween.Tween
	Growth float32 // current outline growth in pixels
	Active bool
}

var Pulse = donburi.NewComponentType[PulseData]()
