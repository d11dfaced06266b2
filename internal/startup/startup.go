// Package startup toggles "launch at login" registration. The real
// implementation writes the per-user Run key in the Windows registry;
// other platforms get an explicit "not supported" answer instead of a
// compiled-out caller.
package startup

import "errors"

// ErrUnsupported is returned by every Manager operation on platforms
// without a startup mechanism.
var ErrUnsupported = errors.New("startup settings are only supported on Windows")

// Manager reads and writes the run-at-login registration.
type Manager interface {
	IsEnabled() (bool, error)
	SetEnabled(enabled bool) error
}
