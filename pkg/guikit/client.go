package guikit

import (
	"fmt"
	"io"

	"github.com/opd-ai/guikit/internal/toolkit"
)

// Widget interfaces, re-exported for callers outside this module.
type (
	Factory  = toolkit.Factory
	Button   = toolkit.Button
	Checkbox = toolkit.Checkbox
)

// ErrUnsupportedToolkit is returned for toolkit names with no widget family.
var ErrUnsupportedToolkit = toolkit.ErrUnsupportedToolkit

// NewFactoryFor creates the Factory for the named toolkit ("windows" or "macos").
func NewFactoryFor(name string) (Factory, error) {
	return toolkit.NewFactoryFor(name)
}

// Demonstrate creates a button and a checkbox from f, then writes the
// checkbox's Check result and the result of toggling it with the button,
// one per line. It depends only on the widget interfaces, so any family
// can be passed in.
func Demonstrate(w io.Writer, f Factory) error {
	button := f.CreateButton()
	checkbox := f.CreateCheckbox()

	if _, err := fmt.Fprintln(w, checkbox.Check()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, checkbox.ToggleWithButton(button)); err != nil {
		return err
	}
	return nil
}
