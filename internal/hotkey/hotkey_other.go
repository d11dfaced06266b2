//go:build !windows

package hotkey

// Listener is a no-op outside Windows; the tray icon (or nothing) is the
// only toggle surface there.
type Listener struct{}

func New(onToggle func()) *Listener {
	return &Listener{}
}

func (l *Listener) Start() {}

func (l *Listener) Stop() {}
