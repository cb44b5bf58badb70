package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/moveable/components"
	cfg "github.com/automoto/moveable/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowHUD         bool `json:"showHud"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// ItemStore is the part of *gdata.Manager the settings code uses.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// settingsStore is nil until InitPersistence succeeds; load and save are
// then no-ops.
var settingsStore ItemStore

// InitPersistence opens the gdata store named by cfg.Settings.AppName.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{AppName: cfg.Settings.AppName})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	UseStore(m)
	return nil
}

// UseStore replaces the settings backend. Passing nil disables persistence.
func UseStore(s ItemStore) {
	settingsStore = s
}

// LoadSettings reads the saved settings. It returns nil, nil when
// persistence is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}
	data, err := settingsStore.LoadItem(cfg.Settings.StoreKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeSettings(data)
}

// SaveSettings writes s under cfg.Settings.StoreKey.
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := settingsStore.SaveItem(cfg.Settings.StoreKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	return &settings, nil
}

// toSaved snapshots the settings component for storage
func toSaved(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		ShowHUD:         s.ShowHUD,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
}
