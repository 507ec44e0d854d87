// Package toolkit provides the widget families of a cross-platform GUI toolkit.
//
// The package defines the Button, Checkbox and Factory interfaces together with
// one concrete family per supported platform (Windows and MacOS). Client code
// asks a Factory for widgets and never names a concrete type, so swapping the
// factory swaps the whole family at once.
//
// # Usage
//
// Creating the family for the host OS:
//
//	f, err := toolkit.NewFactory()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	button := f.CreateButton()
//	checkbox := f.CreateCheckbox()
//	fmt.Println(checkbox.ToggleWithButton(button))
//
// Selecting a family by name:
//
//	f, err := toolkit.NewFactoryFor("macos")
//
// # Family Consistency
//
// A factory only ever returns widgets of its own family. Nothing stops a caller
// from pairing widgets of different families by hand: ToggleWithButton accepts
// any Button.
//
// # Thread Safety
//
// Factories and widgets are stateless and safe for concurrent use.
package toolkit
