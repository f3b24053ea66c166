package config

// SettingsConfig contains persisted display settings defaults
type SettingsConfig struct {
	AppName     string
	SettingsKey string
	Fullscreen  bool
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "kokaton_village",
		SettingsKey: "settings.yaml",
		Fullscreen:  false,
	}
}
