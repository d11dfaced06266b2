//go:build !windows

package runner

import "os/exec"

// Spawn starts the executable as an independent process and returns
// without waiting on it.
func Spawn(path string) error {
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
