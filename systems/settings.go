package systems

import (
	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Window applies window-level settings. The ebiten implementation is used
// at runtime; tests swap in a recorder.
type Window interface {
	SetFullscreen(bool)
	SetWindowSize(width, height int)
}

type ebitenWindow struct{}

func (ebitenWindow) SetFullscreen(on bool)  { ebiten.SetFullscreen(on) }
func (ebitenWindow) SetWindowSize(w, h int) { ebiten.SetWindowSize(w, h) }

// EbitenWindow controls the real ebiten window.
var EbitenWindow Window = ebitenWindow{}

// GetOrCreateSettings returns the settings singleton, creating it from defaults.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ShowHUD:         true,
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}

// NewUpdateSettings returns a system handling HUD, fullscreen and
// resolution toggles. Changes are applied to win and persisted.
func NewUpdateSettings(win Window) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettings(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionToggleHUD).JustPressed {
			settings.ShowHUD = !settings.ShowHUD
			settings.Dirty = true
		}
		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			settings.Fullscreen = !settings.Fullscreen
			win.SetFullscreen(settings.Fullscreen)
			settings.Dirty = true
		}
		if GetAction(input, cfg.ActionCycleResolution).JustPressed && !settings.Fullscreen {
			settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
			res := cfg.Settings.Resolutions[settings.ResolutionIndex]
			win.SetWindowSize(res.Width, res.Height)
			settings.Dirty = true
		}

		if settings.Dirty {
			_ = SaveSettings(toSaved(settings))
			settings.Dirty = false
		}
	}
}

// ApplySavedSettings copies loaded settings into the world and the window.
// With keepSize the window keeps its current size and the preset is
// reported as custom.
func ApplySavedSettings(e *ecs.ECS, win Window, saved *SavedSettings, keepSize bool) {
	settings := GetOrCreateSettings(e)
	if saved != nil {
		settings.ShowHUD = saved.ShowHUD
		settings.Fullscreen = saved.Fullscreen
		settings.ResolutionIndex = saved.ResolutionIndex

		win.SetFullscreen(saved.Fullscreen)
		if !keepSize && !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
			res := cfg.Settings.Resolutions[saved.ResolutionIndex]
			win.SetWindowSize(res.Width, res.Height)
		}
	}
	if keepSize {
		settings.ResolutionIndex = -1
	}
}
