package components

import (
	"github.com/automoto/moveable/shared/motion"
	"github.com/yohamta/donburi"
)

// MoveableData is the single steerable element.
// Flags are written by the input tracker and read by the integrator.
// Its rectangle lives in the Object component.
type MoveableData struct {
	Flags motion.Flags
}

var Moveable = donburi.NewComponentType[MoveableData]()

// MotionData carries frame timing between integrator runs.
type MotionData struct {
	motion.State
	BaseSpeed float64
}

var Motion = donburi.NewComponentType[MotionData]()
