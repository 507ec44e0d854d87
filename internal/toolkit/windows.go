package toolkit

import "fmt"

// windowsFactory creates Windows widgets.
type windowsFactory struct{}

// NewWindowsFactory returns the Factory for the Windows widget family.
func NewWindowsFactory() Factory {
	return windowsFactory{}
}

func (windowsFactory) Name() string {
	return "Windows"
}

func (windowsFactory) CreateButton() Button {
	return windowsButton{}
}

func (windowsFactory) CreateCheckbox() Checkbox {
	return windowsCheckbox{}
}

type windowsButton struct{}

func (windowsButton) Click() string {
	return "You have clicked a Windows button."
}

type windowsCheckbox struct{}

func (windowsCheckbox) Check() string {
	return "Windows checkbox is checked."
}

func (windowsCheckbox) ToggleWithButton(b Button) string {
	return fmt.Sprintf("Windows checkbox toggled with (%s)", b.Click())
}
