package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings is the whole persisted configuration record. It is loaded
// once at startup and always saved as a complete record, never merged
// key by key.
type Settings struct {
	LightMode bool   `json:"light_mode"`
	Hotkey    string `json:"hotkey"`
}

// Default returns the settings used when no file exists or the file is
// unreadable.
func Default() Settings {
	return Settings{
		LightMode: false,
		Hotkey:    "Alt+Space",
	}
}

// Path is where the record lives on disk:
// <user config dir>/QuickRun/settings.json.
func Path() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "QuickRun", "settings.json")
}

// Load reads the record from path, falling back to defaults on any
// failure. Missing fields keep their defaults.
func Load(path string) Settings {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default()
	}
	if s.Hotkey == "" {
		s.Hotkey = Default().Hotkey
	}
	return s
}

// Save writes the whole record to path, creating the directory if
// needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
