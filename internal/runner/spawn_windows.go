//go:build windows

package runner

import (
	"os/exec"
	"syscall"
)

const detachedProcess = 0x00000008

// Spawn starts the executable as an independent process and returns
// without waiting on it. The child gets no console window of its own, so
// console programs launched from the GUI stay invisible, and
// DETACHED_PROCESS keeps it alive after QuickRun exits.
func Spawn(path string) error {
	cmd := exec.Command(path)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: detachedProcess,
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	return cmd.Process.Release()
}
