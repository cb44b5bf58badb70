package factory

import (
	"github.com/automoto/moveable/archetypes"
	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/automoto/moveable/shared/motion"
	"github.com/automoto/moveable/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMoveable spawns the moveable at (x, y) and adds it to the viewport space.
func CreateMoveable(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	moveable := archetypes.Moveable.Spawn(ecs)

	w, h := cfg.Moveable.Width, cfg.Moveable.Height
	obj := resolv.NewObject(x, y, w, h, tags.ResolvMoveable)
	obj.Data = moveable

	components.Object.SetValue(moveable, components.ObjectData{Object: obj})
	components.Moveable.SetValue(moveable, components.MoveableData{})

	state := motion.NewState()
	state.TimescaleFactor = cfg.Motion.TimescaleFactor
	state.Mode = cfg.Motion.DeltaMode
	components.Motion.SetValue(moveable, components.MotionData{
		State:     state,
		BaseSpeed: cfg.Motion.BaseSpeed,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return moveable
}
