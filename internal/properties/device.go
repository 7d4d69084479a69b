package properties

import "github.com/nerrad567/gray-logic-insteon/internal/insteon"

// Property is the capability the engine needs from one configuration
// setting. *insteon.Property satisfies it.
type Property interface {
	Name() string
	Value() any
	PendingValue() any
	IsReadOnly() bool
	IsDirty() bool
	SetPending(v any)
}

// Device is the capability the engine needs from a device: ordered access
// to both property collections, the button list, and the two convenience
// mutators whose behaviour matches the bit-level mask algorithms.
type Device interface {
	// FlagNames returns operating-flag names in collection order.
	FlagNames() []string
	// Flag returns the named operating flag, or nil.
	Flag(name string) Property
	// PropertyNames returns extended-property names in collection order.
	PropertyNames() []string
	// Property returns the named extended property, or nil.
	Property(name string) Property
	// Buttons returns the device buttons in ascending ID order.
	Buttons() []insteon.Button
	// SetRadioButtons stages masks linking the given buttons into one group.
	SetRadioButtons(buttons []int)
	// SetToggleMode stages the toggle behaviour of one button.
	SetToggleMode(button int, mode insteon.ToggleMode)
}

// deviceAdapter exposes an *insteon.Device through the Device interface.
type deviceAdapter struct {
	d *insteon.Device
}

// Wrap adapts a concrete device to the engine's capability interface.
func Wrap(d *insteon.Device) Device { return deviceAdapter{d: d} }

func (a deviceAdapter) FlagNames() []string { return a.d.OperatingFlags().Names() }

func (a deviceAdapter) Flag(name string) Property {
	// An explicit nil check avoids returning a typed-nil interface.
	if p := a.d.OperatingFlags().Get(name); p != nil {
		return p
	}
	return nil
}

func (a deviceAdapter) PropertyNames() []string { return a.d.ExtendedProperties().Names() }

func (a deviceAdapter) Property(name string) Property {
	if p := a.d.ExtendedProperties().Get(name); p != nil {
		return p
	}
	return nil
}

func (a deviceAdapter) Buttons() []insteon.Button { return a.d.Buttons() }

func (a deviceAdapter) SetRadioButtons(buttons []int) { a.d.SetRadioButtons(buttons) }

func (a deviceAdapter) SetToggleMode(button int, mode insteon.ToggleMode) {
	a.d.SetToggleMode(button, mode)
}
