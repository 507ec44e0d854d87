//go:build windows

package toolkit

// NewFactory creates the native widget family for Windows.
func NewFactory() (Factory, error) {
	return NewWindowsFactory(), nil
}
