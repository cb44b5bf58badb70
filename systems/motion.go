package systems

import (
	"time"

	"github.com/automoto/moveable/components"
	"github.com/automoto/moveable/shared/motion"
	"github.com/yohamta/donburi/ecs"
)

// Clock returns a high resolution timestamp in milliseconds.
type Clock func() float64

// SinceStart returns a Clock measuring milliseconds since it was created.
func SinceStart() Clock {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}

// NewUpdateMotion returns the per-frame integrator driven by clock.
func NewUpdateMotion(clock Clock) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Moveable.First(e.World)
		if !ok {
			Fail(e, ErrNoMoveable)
			return
		}
		vw, vh, ok := viewportSize(e)
		if !ok {
			return
		}

		m := components.Moveable.Get(entry)
		mo := components.Motion.Get(entry)
		obj := components.Object.Get(entry)

		p := motion.Step(&mo.State, motion.Frame{
			Timestamp: clock(),
			BaseSpeed: mo.BaseSpeed,
			Flags:     m.Flags,
			Position:  motion.Point{X: obj.X, Y: obj.Y},
			Width:     obj.W,
			Height:    obj.H,
			ViewW:     vw,
			ViewH:     vh,
		})
		obj.X, obj.Y = p.X, p.Y
		obj.Update()
	}
}
