package systems

import (
	"github.com/automoto/moveable/components"
	"github.com/automoto/moveable/shared/motion"
	"github.com/automoto/moveable/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewportSize returns the size of the viewport space, failing the loop when it is missing.
func viewportSize(e *ecs.ECS) (width, height float64, ok bool) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		Fail(e, ErrNoViewport)
		return 0, 0, false
	}
	width, height = factory.SpaceSize(components.Space.Get(entry))
	return width, height, true
}

// SetViewport resizes the viewport and re-clamps the moveable into it.
// Called from Layout whenever the outside size changes.
func SetViewport(e *ecs.ECS, width, height int) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	old := components.Space.Get(entry)
	if w, h := factory.SpaceSize(old); w == float64(width) && h == float64(height) {
		return
	}

	space := factory.NewSpace(width, height)
	components.Space.Set(entry, space)
	vw, vh := factory.SpaceSize(space)

	// Clamp before re-adding: an object past the new edge touches no cell.
	components.Object.Each(e.World, func(oe *donburi.Entry) {
		obj := components.Object.Get(oe)
		if obj.Space != old {
			return
		}
		old.Remove(obj.Object)
		p := motion.Bounds(vw, vh, obj.W, obj.H).ClampPoint(motion.Point{X: obj.X, Y: obj.Y})
		obj.X, obj.Y = p.X, p.Y
		space.Add(obj.Object)
	})
}
