package toolkit

import "fmt"

// macOSFactory creates MacOS widgets.
type macOSFactory struct{}

// NewMacOSFactory returns the Factory for the MacOS widget family.
func NewMacOSFactory() Factory {
	return macOSFactory{}
}

func (macOSFactory) Name() string {
	return "MacOS"
}

func (macOSFactory) CreateButton() Button {
	return macOSButton{}
}

func (macOSFactory) CreateCheckbox() Checkbox {
	return macOSCheckbox{}
}

type macOSButton struct{}

func (macOSButton) Click() string {
	return "You have clicked a MacOS button."
}

type macOSCheckbox struct{}

func (macOSCheckbox) Check() string {
	return "MacOS checkbox is checked."
}

func (macOSCheckbox) ToggleWithButton(b Button) string {
	return fmt.Sprintf("MacOS checkbox toggled with (%s)", b.Click())
}
