package systems

import (
	"fmt"

	cfg "github.com/automoto/kokaton/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `yaml:"fullscreen"`
}

// settingsStore is the subset of gdata.Manager used here.
type settingsStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store settingsStore

// InitPersistence opens the per-user data directory for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return fmt.Errorf("open settings store: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil settings when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Settings.SettingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.SaveItem(cfg.Settings.SettingsKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySavedSettings copies loaded settings into the live configuration and
// the window.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Settings.Fullscreen = saved.Fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)
}

// ToggleFullscreen flips the fullscreen setting and persists it.
func ToggleFullscreen() {
	cfg.Settings.Fullscreen = !cfg.Settings.Fullscreen
	ebiten.SetFullscreen(cfg.Settings.Fullscreen)
	if err := SaveSettings(&SavedSettings{Fullscreen: cfg.Settings.Fullscreen}); err != nil {
		log.Warn().Err(err).Msg("fullscreen setting not persisted")
	}
}
