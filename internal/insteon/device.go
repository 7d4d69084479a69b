package insteon

import (
	"context"
	"fmt"
	"sort"
)

// ToggleMode classifies how a keypad button behaves when pressed.
type ToggleMode int

// Toggle mode codes, as exposed on the wire.
const (
	// ToggleOnOff alternates between on and off on each press.
	ToggleOnOff ToggleMode = 0
	// NonToggleOn always sends on (momentary on-only).
	NonToggleOn ToggleMode = 1
	// NonToggleOff always sends off (momentary off-only).
	NonToggleOff ToggleMode = 2
)

// Valid reports whether m is one of the three defined modes.
func (m ToggleMode) Valid() bool {
	return m == ToggleOnOff || m == NonToggleOn || m == NonToggleOff
}

// Button is one physical button-like element on a multi-button device.
// IDs are 1-based and stable; the bit position in shared mask properties
// is ID-1.
type Button struct {
	ID   int
	Name string
}

// maxButtonBits is the width of the shared button mask properties.
const maxButtonBits = 8

// ButtonPropertyName returns the per-button property name for a mask
// base name: the bare name for button 1, "{base}_{id}" otherwise.
func ButtonPropertyName(base string, button int) string {
	if button == 1 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, button)
}

// Loader reads a device's configuration from hardware, replacing the
// committed values of its flags and properties. Implementations own all
// modem I/O; the device model never talks to the wire itself.
type Loader interface {
	LoadConfig(ctx context.Context, d *Device) error
}

// Device is one node on the Insteon network, holding its operating flags,
// extended properties and buttons. Devices are built by the kind
// factories in this package and mutated through staged property edits.
//
// Device is not safe for concurrent mutation; callers are expected to
// serialise access per device, which the API dispatcher provides.
type Device struct {
	address string
	name    string
	kind    Kind
	flags   *PropertySet
	ext     *PropertySet
	buttons []Button
	loader  Loader
}

// Address returns the device network address (e.g. "1a.2b.3c").
func (d *Device) Address() string { return d.address }

// Name returns the device display name.
func (d *Device) Name() string { return d.name }

// Kind returns the device kind this device was built as.
func (d *Device) Kind() Kind { return d.kind }

// OperatingFlags returns the boolean flag collection.
func (d *Device) OperatingFlags() *PropertySet { return d.flags }

// ExtendedProperties returns the byte-valued property collection.
func (d *Device) ExtendedProperties() *PropertySet { return d.ext }

// Buttons returns the device buttons in ascending ID order.
func (d *Device) Buttons() []Button { return d.buttons }

// Button returns the button with the given ID.
func (d *Device) Button(id int) (Button, bool) {
	for _, b := range d.buttons {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}

// SetLoader installs the hardware reader used by LoadConfig.
func (d *Device) SetLoader(l Loader) { d.loader = l }

// maskValue returns the committed value of a mask property as an int.
func maskValue(p *Property) int {
	if p == nil {
		return 0
	}
	if v, ok := p.Value().(int); ok {
		return v
	}
	return 0
}

// SetRadioButtons stages on/off masks linking the given buttons into one
// mutually-exclusive group. Each member's masks are set to the bits of
// the other members, which is how the firmware represents a shared group
// across up to eight button positions. Buttons without mask properties
// are skipped.
func (d *Device) SetRadioButtons(buttons []int) {
	for _, button := range buttons {
		mask := 0
		for _, other := range buttons {
			if other != button {
				mask |= 1 << (other - 1)
			}
		}
		on := d.ext.Get(ButtonPropertyName(PropOnMask, button))
		off := d.ext.Get(ButtonPropertyName(PropOffMask, button))
		if on != nil {
			on.SetPending(mask)
		}
		if off != nil {
			off.SetPending(mask)
		}
	}
}

// SetToggleMode stages the toggle behaviour of one button. The bit at
// position button-1 is combined with the committed values of the two
// shared masks:
//
//	ToggleOnOff:  clear the bit in both masks
//	NonToggleOn:  set the bit in both masks
//	NonToggleOff: set the bit in non_toggle_mask, clear it in
//	              non_toggle_on_off_mask
func (d *Device) SetToggleMode(button int, mode ToggleMode) {
	nonToggle := d.ext.Get(PropNonToggleMask)
	onOff := d.ext.Get(PropNonToggleOnOffMask)
	if nonToggle == nil || onOff == nil || !mode.Valid() {
		return
	}

	bit := 1 << (button - 1)
	toggleBits := maskValue(nonToggle)
	onOffBits := maskValue(onOff)

	switch mode {
	case ToggleOnOff:
		nonToggle.SetPending(toggleBits &^ bit)
		onOff.SetPending(onOffBits &^ bit)
	case NonToggleOn:
		nonToggle.SetPending(toggleBits | bit)
		onOff.SetPending(onOffBits | bit)
	case NonToggleOff:
		nonToggle.SetPending(toggleBits | bit)
		onOff.SetPending(onOffBits &^ bit)
	}
}

// CommitPending promotes every staged edit to its committed value, as
// after the staged configuration has been written to the device.
func (d *Device) CommitPending() {
	for _, set := range []*PropertySet{d.flags, d.ext} {
		for _, name := range set.Names() {
			set.Get(name).Commit()
		}
	}
}

// ResetPending discards every staged edit on the device.
func (d *Device) ResetPending() {
	for _, set := range []*PropertySet{d.flags, d.ext} {
		for _, name := range set.Names() {
			set.Get(name).Reset()
		}
	}
}

// DirtyCount returns the number of properties with staged edits.
func (d *Device) DirtyCount() int {
	n := 0
	for _, set := range []*PropertySet{d.flags, d.ext} {
		for _, name := range set.Names() {
			if set.Get(name).IsDirty() {
				n++
			}
		}
	}
	return n
}

// LoadConfig re-reads the device configuration from hardware via the
// installed Loader, then discards any staged edits the read did not
// already overwrite: a reload replaces local state with the device's.
// Without a loader the committed values stay as they are and only the
// staged edits are dropped.
func (d *Device) LoadConfig(ctx context.Context) error {
	if d.loader != nil {
		if err := d.loader.LoadConfig(ctx, d); err != nil {
			return fmt.Errorf("loading config for %s: %w", d.address, err)
		}
	}
	d.ResetPending()
	return nil
}

// LoadValues sets committed values in bulk, matching names against both
// collections. Unknown names are ignored. Used when seeding a device from
// a saved snapshot or test fixture.
func (d *Device) LoadValues(flags map[string]bool, ext map[string]int) {
	for name, v := range flags {
		if p := d.flags.Get(name); p != nil {
			p.Load(v)
		}
	}
	for name, v := range ext {
		if p := d.ext.Get(name); p != nil {
			p.Load(v)
		}
	}
}

// sortButtons orders a device's buttons by ascending ID.
func sortButtons(buttons []Button) {
	sort.Slice(buttons, func(i, j int) bool { return buttons[i].ID < buttons[j].ID })
}
