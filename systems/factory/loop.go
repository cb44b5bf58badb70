package factory

import (
	"github.com/automoto/moveable/archetypes"
	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLoop creates the frame loop singleton.
func CreateLoop(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Loop.Spawn(ecs)
}

// CreateSettings creates the settings singleton from defaults.
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		ShowHUD:         true,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	})
	return settings
}
