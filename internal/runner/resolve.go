package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultPathExt mirrors the Windows fallback when PATHEXT is unset.
const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// IsExplicitPath reports whether the input names a file path rather than
// a bare command. Anything containing a directory separator (either
// flavour) or a drive separator is treated as explicit:
// "C:\Windows\notepad.exe", ".\script.bat", "folder/app.exe".
func IsExplicitPath(input string) bool {
	return strings.ContainsAny(input, `\/:`)
}

// ResolveExplicit verifies that an explicit path references an existing
// regular file. Explicit paths are used exactly as given; no extension
// search is performed.
func ResolveExplicit(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return path, nil
}

// ResolveOnPath searches dirs in order for command. A command that
// already contains a "." is assumed to carry its extension and is
// matched exactly per directory; otherwise every entry of exts is tried
// within a directory before moving to the next one. The first existing
// regular file wins.
func ResolveOnPath(command string, dirs, exts []string) (string, bool) {
	hasExtension := strings.Contains(command, ".")

	for _, dir := range dirs {
		if hasExtension {
			candidate := filepath.Join(dir, command)
			if isRegularFile(candidate) {
				return candidate, true
			}
			continue
		}
		for _, ext := range exts {
			candidate := filepath.Join(dir, command+ext)
			if isRegularFile(candidate) {
				return candidate, true
			}
		}
	}

	return "", false
}

// SearchDirs returns the PATH directories in their original order.
func SearchDirs() []string {
	return filepath.SplitList(os.Getenv("PATH"))
}

// Extensions returns the PATHEXT candidates in their original order,
// falling back to the stock Windows list when the variable is unset.
func Extensions() []string {
	if pathext := os.Getenv("PATHEXT"); pathext != "" {
		return filepath.SplitList(pathext)
	}
	return strings.Split(defaultPathExt, ";")
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
