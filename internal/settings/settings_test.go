package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "settings.json"))
	assert.Equal(t, Default(), s)
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Equal(t, Default(), Load(path))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "QuickRun", "settings.json")

	want := Settings{LightMode: true, Hotkey: "Alt+Space"}
	require.NoError(t, Save(path, want))

	assert.Equal(t, want, Load(path))
}

func TestLoad_EmptyHotkeyGetsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"light_mode": true}`), 0o644))

	s := Load(path)
	assert.True(t, s.LightMode)
	assert.Equal(t, "Alt+Space", s.Hotkey)
}
