package archetypes

import (
	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/automoto/moveable/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Moveable = newArchetype(
		tags.Moveable,
		components.Moveable,
		components.Motion,
		components.Object,
		components.Pulse,
	)
	Viewport = newArchetype(
		components.Space,
	)
	Loop = newArchetype(
		components.Loop,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
