package toolkit

import (
	"strings"
	"sync"
	"testing"
)

var families = []struct {
	name    string
	factory Factory
	other   string
}{
	{name: "Windows", factory: NewWindowsFactory(), other: "MacOS"},
	{name: "MacOS", factory: NewMacOSFactory(), other: "Windows"},
}

func TestButtonClick(t *testing.T) {
	for _, tt := range families {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.factory.CreateButton().Click()
			if !strings.Contains(got, tt.name) {
				t.Errorf("Click() = %q, want it to contain %q", got, tt.name)
			}
			if !strings.Contains(got, "button") {
				t.Errorf("Click() = %q, want it to contain %q", got, "button")
			}
		})
	}
}

func TestCheckboxCheck(t *testing.T) {
	for _, tt := range families {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.factory.CreateCheckbox().Check()
			if !strings.Contains(got, tt.name) {
				t.Errorf("Check() = %q, want it to contain %q", got, tt.name)
			}
			if !strings.Contains(got, "checked") {
				t.Errorf("Check() = %q, want it to contain %q", got, "checked")
			}
		})
	}
}

// TestFamilyConsistency verifies a factory never leaks widgets of another family.
func TestFamilyConsistency(t *testing.T) {
	for _, tt := range families {
		t.Run(tt.name, func(t *testing.T) {
			if tt.factory.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.factory.Name(), tt.name)
			}

			outputs := []string{
				tt.factory.CreateButton().Click(),
				tt.factory.CreateCheckbox().Check(),
				tt.factory.CreateCheckbox().ToggleWithButton(tt.factory.CreateButton()),
			}
			for _, out := range outputs {
				if strings.Contains(out, tt.other) {
					t.Errorf("%s factory produced %q, which names %s", tt.name, out, tt.other)
				}
			}
		})
	}
}

func TestToggleWithButton(t *testing.T) {
	tests := []struct {
		name     string
		checkbox Checkbox
		button   Button
		want     string
	}{
		{
			name:     "windows with windows",
			checkbox: NewWindowsFactory().CreateCheckbox(),
			button:   NewWindowsFactory().CreateButton(),
			want:     "Windows checkbox toggled with (You have clicked a Windows button.)",
		},
		{
			name:     "macos with macos",
			checkbox: NewMacOSFactory().CreateCheckbox(),
			button:   NewMacOSFactory().CreateButton(),
			want:     "MacOS checkbox toggled with (You have clicked a MacOS button.)",
		},
		{
			name:     "windows with macos",
			checkbox: NewWindowsFactory().CreateCheckbox(),
			button:   NewMacOSFactory().CreateButton(),
			want:     "Windows checkbox toggled with (You have clicked a MacOS button.)",
		},
		{
			name:     "macos with windows",
			checkbox: NewMacOSFactory().CreateCheckbox(),
			button:   NewWindowsFactory().CreateButton(),
			want:     "MacOS checkbox toggled with (You have clicked a Windows button.)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.checkbox.ToggleWithButton(tt.button)
			if got != tt.want {
				t.Errorf("ToggleWithButton() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(got, tt.button.Click()) {
				t.Errorf("ToggleWithButton() = %q does not embed click result %q", got, tt.button.Click())
			}
		})
	}
}

// stubButton is a Button outside both families.
type stubButton struct{}

func (stubButton) Click() string { return "stub" }

func TestToggleWithForeignButton(t *testing.T) {
	got := NewMacOSFactory().CreateCheckbox().ToggleWithButton(stubButton{})
	if got != "MacOS checkbox toggled with (stub)" {
		t.Errorf("ToggleWithButton(stub) = %q", got)
	}
}

func TestToggleWithNilButtonPanics(t *testing.T) {
	for _, tt := range families {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("ToggleWithButton(nil) did not panic")
				}
			}()
			tt.factory.CreateCheckbox().ToggleWithButton(nil)
		})
	}
}

func TestOperationsAreIdempotent(t *testing.T) {
	for _, tt := range families {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.factory.CreateButton()
			c := tt.factory.CreateCheckbox()

			firstClick, firstCheck, firstToggle := b.Click(), c.Check(), c.ToggleWithButton(b)
			for i := 0; i < 5; i++ {
				if got := b.Click(); got != firstClick {
					t.Fatalf("Click() call %d = %q, want %q", i, got, firstClick)
				}
				if got := c.Check(); got != firstCheck {
					t.Fatalf("Check() call %d = %q, want %q", i, got, firstCheck)
				}
				if got := c.ToggleWithButton(b); got != firstToggle {
					t.Fatalf("ToggleWithButton() call %d = %q, want %q", i, got, firstToggle)
				}
			}
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := families[i%len(families)].factory
			want := f.CreateCheckbox().ToggleWithButton(f.CreateButton())
			for j := 0; j < 100; j++ {
				if got := f.CreateCheckbox().ToggleWithButton(f.CreateButton()); got != want {
					t.Errorf("goroutine %d: got %q, want %q", i, got, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
