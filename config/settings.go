package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains persisted-settings configuration
type SettingsConfig struct {
	AppName                string // gdata application name
	StoreKey               string // gdata item holding SavedSettings
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:  "moveable",
		StoreKey: "settings",
		Resolutions: []Resolution{
			{Width: 800, Height: 600, Label: "800 x 600"},
			{Width: 1024, Height: 768, Label: "1024 x 768"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
	}
}
