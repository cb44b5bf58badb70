package components

import "github.com/yohamta/donburi"

// SettingsData stores toggles that survive restarts.
type SettingsData struct {
	ShowHUD         bool
	Fullscreen      bool
	ResolutionIndex int
	Dirty           bool // changed since last save
}

var Settings = donburi.NewComponentType[SettingsData]()
