package systems

import (
	"fmt"

	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/automoto/moveable/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudLines = 4

// DrawHUD renders position, held directions, the last delta and the frame
// counter in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowHUD {
		return
	}
	entry, ok := components.Moveable.First(e.World)
	if !ok {
		return
	}
	lines := hudText(
		components.Moveable.Get(entry),
		components.Motion.Get(entry),
		components.Object.Get(entry),
		getOrCreateLoop(e).Frame,
		resolutionLabel(settings),
	)

	margin := cfg.HUD.Margin
	vector.FillRect(screen,
		float32(margin/2), float32(margin/2),
		220, float32(cfg.HUD.LineHeight*hudLines+margin),
		cfg.HUD.BgColor, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		y := int(margin + cfg.HUD.LineHeight*float64(i+1))
		text.Draw(screen, line, face, int(margin), y, cfg.HUD.TextColor)
	}
}

func resolutionLabel(s *components.SettingsData) string {
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		return "custom"
	}
	return cfg.Settings.Resolutions[s.ResolutionIndex].Label
}

func hudText(m *components.MoveableData, mo *components.MotionData, obj *components.ObjectData, frame uint64, preset string) [hudLines]string {
	held := ""
	for _, d := range []struct {
		on   bool
		name string
	}{
		{m.Flags.Left, "L"}, {m.Flags.Up, "U"}, {m.Flags.Right, "R"}, {m.Flags.Down, "D"},
	} {
		if d.on {
			held += d.name
		} else {
			held += "-"
		}
	}
	return [hudLines]string{
		fmt.Sprintf("pos  %.1f, %.1f", obj.X, obj.Y),
		fmt.Sprintf("keys %s", held),
		fmt.Sprintf("dt   %.4f", mo.LastDelta),
		fmt.Sprintf("#%d  %s", frame, preset),
	}
}
