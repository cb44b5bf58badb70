package systems

import (
	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/automoto/moveable/shared/motion"
	"github.com/automoto/moveable/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawMoveable renders the moveable at its current offset, with the
// placement pulse outline when one is running.
func DrawMoveable(e *ecs.ECS, screen *ebiten.Image) {
	components.Moveable.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)

		vector.FillRect(screen, x, y, w, h, cfg.Moveable.Color, false)

		pulse := components.Pulse.Get(entry)
		if pulse.Active && pulse.Growth > 0 {
			g := pulse.Growth
			vector.StrokeRect(screen, x-g, y-g, w+2*g, h+2*g, 2, cfg.Moveable.OutlineColor, false)
		}
	})
}

// DrawBounds outlines the area the moveable's top-left corner may occupy.
func DrawBounds(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBounds {
		return
	}
	entry, ok := components.Moveable.First(e.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	vw, vh := factory.SpaceSize(components.Space.Get(spaceEntry))
	b := motion.Bounds(vw, vh, obj.W, obj.H)

	vector.StrokeRect(screen,
		float32(b.MinX), float32(b.MinY),
		float32(b.MaxX-b.MinX), float32(b.MaxY-b.MinY),
		1, cfg.HUD.BoundsLine, false)
}
