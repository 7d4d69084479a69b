package insteon

import "fmt"

// Kind identifies the device model family, which determines the standard
// flag, property and button sets a device is built with.
type Kind string

// Supported device kinds.
const (
	KindSwitch  Kind = "switch"
	KindDimmer  Kind = "dimmer"
	KindKeypad6 Kind = "keypad_6"
	KindKeypad8 Kind = "keypad_8"
)

// AllKinds returns all valid device kinds.
func AllKinds() []Kind {
	return []Kind{KindSwitch, KindDimmer, KindKeypad6, KindKeypad8}
}

// Valid reports whether k names a known device kind.
func (k Kind) Valid() bool {
	for _, known := range AllKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// NewDevice builds a device of the given kind with its standard
// configuration collections, all values at factory defaults.
func NewDevice(address, name string, kind Kind) (*Device, error) {
	d := &Device{
		address: address,
		name:    name,
		kind:    kind,
		flags:   NewPropertySet(),
		ext:     NewPropertySet(),
	}

	switch kind {
	case KindSwitch:
		addSwitchConfig(d)
	case KindDimmer:
		addDimmerConfig(d)
	case KindKeypad6:
		addKeypadConfig(d, 6)
	case KindKeypad8:
		addKeypadConfig(d, 8)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	sortButtons(d.buttons)
	return d, nil
}

// addSwitchConfig populates a single-load on/off switch.
func addSwitchConfig(d *Device) {
	d.flags.Add(NewFlag("program_lock_on", false))
	d.flags.Add(NewFlag("led_on", false))
	d.flags.Add(NewFlag("key_beep_on", false))
	d.flags.Add(NewFlag("powerline_disable_on", true))

	d.ext.Add(NewByteProperty(PropX10House, false))
	d.ext.Add(NewByteProperty(PropX10Unit, false))
	d.ext.Add(NewByteProperty(PropLEDDimming, false))

	d.buttons = append(d.buttons, Button{ID: 1, Name: "main"})
}

// addDimmerConfig populates a dimming load controller.
func addDimmerConfig(d *Device) {
	addSwitchConfig(d)
	d.flags.Add(NewFlag("resume_dim_on", false))
	d.ext.Add(NewByteProperty(PropRampRate, false))
	d.ext.Add(NewByteProperty(PropOnLevel, false))
}

// addKeypadConfig populates a KeypadLinc-style multi-button controller.
// Buttons beyond the main load button are named "button_b", "button_c"
// and so on; 6-button keypads skip the b/c positions used by the paired
// on/off rocker.
func addKeypadConfig(d *Device, buttons int) {
	addDimmerConfig(d)

	d.buttons = append(d.buttons, Button{ID: 1, Name: "main"})
	start, end := 2, maxButtonBits
	if buttons == 6 {
		// The 6-button layout pairs a large on/off rocker on positions
		// 1-2 and exposes positions 3-6 as configurable buttons.
		start, end = 3, 6
	}
	for id := start; id <= end; id++ {
		name := fmt.Sprintf("button_%c", 'a'+id-1)
		d.buttons = append(d.buttons, Button{ID: id, Name: name})
	}
	// Button 1 already added by addSwitchConfig; drop the duplicate.
	d.buttons = dedupeButtons(d.buttons)

	for _, b := range d.buttons {
		d.ext.Add(NewByteProperty(ButtonPropertyName(PropOnMask, b.ID), false))
		d.ext.Add(NewByteProperty(ButtonPropertyName(PropOffMask, b.ID), false))
	}
	d.ext.Add(NewByteProperty(PropNonToggleMask, false))
	d.ext.Add(NewByteProperty(PropNonToggleOnOffMask, false))
	d.ext.Add(NewByteProperty(PropTriggerGroupMask, false))
}

// dedupeButtons removes duplicate button IDs, keeping first occurrence.
func dedupeButtons(buttons []Button) []Button {
	seen := make(map[int]struct{}, len(buttons))
	out := buttons[:0]
	for _, b := range buttons {
		if _, ok := seen[b.ID]; ok {
			continue
		}
		seen[b.ID] = struct{}{}
		out = append(out, b)
	}
	return out
}
