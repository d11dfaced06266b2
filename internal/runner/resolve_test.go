package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o755))
}

func TestIsExplicitPath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`C:\Windows\notepad.exe`, true},
		{`.\script.bat`, true},
		{`folder/app.exe`, true},
		{`C:`, true},
		{"notepad", false},
		{"notepad.exe", false},
		{"calc", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsExplicitPath(tt.input), "input %q", tt.input)
	}
}

func TestResolveExplicit(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "app.exe")
	touch(t, exe)

	got, err := ResolveExplicit(exe)
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}

func TestResolveExplicit_Missing(t *testing.T) {
	_, err := ResolveExplicit(filepath.Join(t.TempDir(), "nope.exe"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestResolveExplicit_Directory(t *testing.T) {
	_, err := ResolveExplicit(t.TempDir())
	require.Error(t, err)
}

func TestResolveOnPath_DirectoryOrderWins(t *testing.T) {
	d1 := t.TempDir()
	d2 := t.TempDir()
	touch(t, filepath.Join(d1, "foo.BAT"))
	touch(t, filepath.Join(d2, "foo.EXE"))

	// d1 is exhausted completely before d2 is considered, so the .BAT in
	// d1 beats the .EXE in d2 even though .EXE sorts first.
	got, ok := ResolveOnPath("foo", []string{d1, d2}, []string{".EXE", ".BAT"})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(d1, "foo.BAT"), got)
}

func TestResolveOnPath_ExtensionOrderWithinDirectory(t *testing.T) {
	d1 := t.TempDir()
	touch(t, filepath.Join(d1, "foo.EXE"))
	touch(t, filepath.Join(d1, "foo.BAT"))

	got, ok := ResolveOnPath("foo", []string{d1}, []string{".EXE", ".BAT"})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(d1, "foo.EXE"), got)
}

func TestResolveOnPath_SecondDirectory(t *testing.T) {
	d1 := t.TempDir()
	d2 := t.TempDir()
	touch(t, filepath.Join(d2, "foo.BAT"))

	got, ok := ResolveOnPath("foo", []string{d1, d2}, []string{".EXE", ".BAT"})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(d2, "foo.BAT"), got)
}

func TestResolveOnPath_DottedCommandNeverUsesExtensions(t *testing.T) {
	d1 := t.TempDir()
	// foo.bat.EXE exists, but "foo.bat" already carries an extension and
	// must only be matched exactly.
	touch(t, filepath.Join(d1, "foo.bat.EXE"))

	_, ok := ResolveOnPath("foo.bat", []string{d1}, []string{".EXE", ".BAT"})
	assert.False(t, ok)

	touch(t, filepath.Join(d1, "foo.bat"))
	got, ok := ResolveOnPath("foo.bat", []string{d1}, []string{".EXE", ".BAT"})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(d1, "foo.bat"), got)
}

func TestResolveOnPath_EmptyDirs(t *testing.T) {
	_, ok := ResolveOnPath("foo", nil, []string{".EXE"})
	assert.False(t, ok)
}

func TestResolveOnPath_SkipsDirectories(t *testing.T) {
	d1 := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(d1, "foo.EXE"), 0o755))

	_, ok := ResolveOnPath("foo", []string{d1}, []string{".EXE"})
	assert.False(t, ok)
}

func TestExtensions_Default(t *testing.T) {
	t.Setenv("PATHEXT", "")
	assert.Equal(t, []string{".COM", ".EXE", ".BAT", ".CMD"}, Extensions())
}
