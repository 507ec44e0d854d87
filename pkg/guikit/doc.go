// Package guikit demonstrates the toolkit widget families from client code
// that only knows the abstract Factory, Button and Checkbox interfaces.
//
// # Quick Start
//
// Running the client against one family:
//
//	f, err := guikit.NewFactoryFor("windows")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := guikit.Demonstrate(os.Stdout, f); err != nil {
//	    log.Fatal(err)
//	}
//
// Running the narrated demonstration over every family:
//
//	r := guikit.New(guikit.DefaultOptions())
//	if err := r.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Lua Clients
//
// RunScript executes a Lua client against the same families through the
// global toolkit table:
//
//	local f = toolkit.factory("macos")
//	local button = f.create_button()
//	local checkbox = f.create_checkbox()
//	print(checkbox.check())
//	print(checkbox.toggle_with_button(button))
//
// Widget functions are called with dot syntax. Watch re-runs a script each
// time it changes on disk.
//
// # Logging
//
// Options.Logger takes a Logger built by NewLogger (text or JSON slog
// handlers) or FromSlog. Records carry the toolkit or script path as
// attributes and never go to Options.Stdout.
package guikit
