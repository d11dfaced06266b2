//go:build !windows

package tray

// Callbacks are invoked from the tray icon; unused outside Windows.
type Callbacks struct {
	OnToggle       func()
	OnSettings     func()
	OnCheckUpdates func()
	OnQuit         func()
}

// Icon is a no-op outside Windows.
type Icon struct{}

func New(callbacks Callbacks) *Icon {
	return &Icon{}
}

func (t *Icon) Start() {}

func (t *Icon) Stop() {}
