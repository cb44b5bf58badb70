package systems

import (
	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartPulse (re)starts the outline pulse on entry.
func StartPulse(entry *donburi.Entry) {
	if !entry.HasComponent(components.Pulse) {
		return
	}
	pulse := components.Pulse.Get(entry)
	pulse.Tween = gween.New(cfg.Pulse.StartScale, 0, cfg.Pulse.Duration, ease.OutQuad)
	pulse.Growth = cfg.Pulse.StartScale
	pulse.Active = true
}

// UpdatePulse advances every running pulse by one tick.
func UpdatePulse(e *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))
	components.Pulse.Each(e.World, func(entry *donburi.Entry) {
		pulse := components.Pulse.Get(entry)
		if !pulse.Active || pulse.Tween == nil {
			return
		}
		growth, done := pulse.Tween.Update(dt)
		pulse.Growth = growth
		if done {
			pulse.Growth = 0
			pulse.Active = false
			pulse.Tween = nil
		}
	})
}
