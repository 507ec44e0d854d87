package script

import (
	"fmt"
	"strings"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/guikit/internal/toolkit"
)

// Hidden table keys holding the Go widget behind a Lua table.
const (
	buttonKey   = "__button"
	checkboxKey = "__checkbox"
)

// toolkitAPI implements the Lua-side toolkit global:
//
//	toolkit.names()                  -> {"windows", "macos"}
//	toolkit.factory(name)            -> factory table
//	factory.name                     -> "Windows" | "MacOS"
//	factory.create_button()          -> button table
//	factory.create_checkbox()        -> checkbox table
//	button.click()                   -> string
//	checkbox.check()                 -> string
//	checkbox.toggle_with_button(b)   -> string
type toolkitAPI struct {
	// fault is the last Go-side error raised into Lua during the current
	// execution. Guarded by Host.mu.
	fault error
}

func newToolkitAPI() *toolkitAPI {
	return &toolkitAPI{}
}

func (api *toolkitAPI) register(env *rt.Table) {
	tbl := rt.NewTable()
	tbl.Set(rt.StringValue("names"), goFunction("names", 0, api.names))
	tbl.Set(rt.StringValue("factory"), goFunction("factory", 1, api.factory))
	env.Set(rt.StringValue("toolkit"), rt.TableValue(tbl))
}

// fail records err so the host can report it with its Go identity intact.
func (api *toolkitAPI) fail(err error) error {
	api.fault = err
	return err
}

// faultFor returns the recorded fault if callErr was raised by it. A fault
// the script caught with pcall does not match a later, unrelated error.
func (api *toolkitAPI) faultFor(callErr error) error {
	if api.fault == nil || callErr == nil {
		return nil
	}
	if !strings.Contains(callErr.Error(), api.fault.Error()) {
		return nil
	}
	return api.fault
}

func (api *toolkitAPI) names(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	list := rt.NewTable()
	for i, name := range toolkit.Names() {
		list.Set(rt.IntValue(int64(i+1)), rt.StringValue(name))
	}
	return c.PushingNext1(t.Runtime, rt.TableValue(list)), nil
}

func (api *toolkitAPI) factory(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	name, err := c.StringArg(0)
	if err != nil {
		return nil, fmt.Errorf("toolkit.factory: %w", err)
	}

	f, err := toolkit.NewFactoryFor(name)
	if err != nil {
		return nil, api.fail(fmt.Errorf("toolkit.factory: %w", err))
	}

	return c.PushingNext1(t.Runtime, rt.TableValue(api.factoryTable(f))), nil
}

func (api *toolkitAPI) factoryTable(f toolkit.Factory) *rt.Table {
	tbl := rt.NewTable()
	tbl.Set(rt.StringValue("name"), rt.StringValue(f.Name()))
	tbl.Set(rt.StringValue("create_button"), goFunction("create_button", 0,
		func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
			return c.PushingNext1(t.Runtime, rt.TableValue(api.buttonTable(f.CreateButton()))), nil
		}))
	tbl.Set(rt.StringValue("create_checkbox"), goFunction("create_checkbox", 0,
		func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
			return c.PushingNext1(t.Runtime, rt.TableValue(api.checkboxTable(f.CreateCheckbox()))), nil
		}))
	return tbl
}

func (api *toolkitAPI) buttonTable(b toolkit.Button) *rt.Table {
	tbl := rt.NewTable()
	tbl.Set(rt.StringValue(buttonKey), rt.UserDataValue(rt.NewUserData(b, nil)))
	tbl.Set(rt.StringValue("click"), goFunction("click", 0,
		func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
			return c.PushingNext1(t.Runtime, rt.StringValue(b.Click())), nil
		}))
	return tbl
}

func (api *toolkitAPI) checkboxTable(cb toolkit.Checkbox) *rt.Table {
	tbl := rt.NewTable()
	tbl.Set(rt.StringValue(checkboxKey), rt.UserDataValue(rt.NewUserData(cb, nil)))
	tbl.Set(rt.StringValue("check"), goFunction("check", 0,
		func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
			return c.PushingNext1(t.Runtime, rt.StringValue(cb.Check())), nil
		}))
	tbl.Set(rt.StringValue("toggle_with_button"), goFunction("toggle_with_button", 1,
		func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
			if c.NArgs() == 0 {
				return nil, api.fail(fmt.Errorf("toggle_with_button: %w: button", ErrMissingArgument))
			}
			b, ok := buttonFromValue(c.Arg(0))
			if !ok {
				return nil, api.fail(fmt.Errorf("toggle_with_button: %w: argument is not a button", ErrUnsupportedCapability))
			}
			return c.PushingNext1(t.Runtime, rt.StringValue(cb.ToggleWithButton(b))), nil
		}))
	return tbl
}

// buttonFromValue extracts the Go Button behind a button table.
func buttonFromValue(v rt.Value) (toolkit.Button, bool) {
	tbl, ok := v.TryTable()
	if !ok {
		return nil, false
	}
	ud, ok := tbl.Get(rt.StringValue(buttonKey)).TryUserData()
	if !ok {
		return nil, false
	}
	b, ok := ud.Value().(toolkit.Button)
	return b, ok
}

// goFunction wraps fn as a Lua function value that is allowed to run under
// the host's resource limits.
func goFunction(name string, nArgs int, fn rt.GoFunctionFunc) rt.Value {
	goFunc := rt.NewGoFunction(fn, name, nArgs, false)
	rt.SolemnlyDeclareCompliance(rt.ComplyMemSafe|rt.ComplyCpuSafe, goFunc)
	return rt.FunctionValue(goFunc)
}
