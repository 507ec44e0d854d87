package toolkit

// Button is a clickable widget.
type Button interface {
	// Click returns a description of the click, naming the widget family.
	Click() string
}

// Checkbox is a checkable widget that can also be toggled through a Button.
type Checkbox interface {
	// Check returns a description of the checked state.
	Check() string

	// ToggleWithButton clicks b and returns the click result wrapped in a
	// description naming this checkbox's family. b must be non-nil; a nil
	// Button panics like any nil interface call.
	ToggleWithButton(b Button) string
}

// Factory creates widgets of a single family.
type Factory interface {
	// Name returns the display name of the family (e.g., "Windows", "MacOS").
	Name() string

	// CreateButton returns a new Button of this family.
	CreateButton() Button

	// CreateCheckbox returns a new Checkbox of this family.
	CreateCheckbox() Checkbox
}
