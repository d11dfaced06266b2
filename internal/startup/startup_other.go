//go:build !windows

package startup

type unsupportedManager struct{}

// New returns a manager whose operations report ErrUnsupported.
func New() Manager {
	return unsupportedManager{}
}

func (unsupportedManager) IsEnabled() (bool, error) {
	return false, ErrUnsupported
}

func (unsupportedManager) SetEnabled(bool) error {
	return ErrUnsupported
}
