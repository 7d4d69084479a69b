package properties

import (
	"github.com/nerrad567/gray-logic-insteon/internal/insteon"
)

// toggleRows builds one row and schema entry per button describing its
// toggle behaviour, decoded from the two shared masks at bit position
// ID-1. Devices without the mask pair produce no rows.
func toggleRows(d Device) ([]Row, Schema) {
	nonToggle := d.Property(insteon.PropNonToggleMask)
	onOff := d.Property(insteon.PropNonToggleOnOffMask)
	if nonToggle == nil || onOff == nil {
		return nil, Schema{}
	}

	rows := []Row{}
	schema := Schema{}
	for _, b := range d.Buttons() {
		name := TogglePrefix + b.Name
		mode, modified := toggleButtonValue(nonToggle, onOff, b.ID)
		rows = append(rows, Row{Name: name, Value: int(mode), Modified: modified})
		schema[name] = SchemaEntry{
			Name:     name,
			Required: true,
			Type:     TypeSelect,
			Options: []any{
				int(insteon.ToggleOnOff),
				int(insteon.NonToggleOn),
				int(insteon.NonToggleOff),
			},
		}
	}
	return rows, schema
}

// toggleButtonValue classifies one button's toggle mode and computes its
// modified flag. The flag is bit-level: one shared 8-bit mask covers all
// buttons, so a property-level dirty flag would report every button as
// modified whenever any one button's bit changed. The on/off mask bit is
// only consulted when the mode is non-toggle, since it has no meaning
// otherwise.
func toggleButtonValue(nonToggle, onOff Property, button int) (insteon.ToggleMode, bool) {
	toggleMask, toggleDirty := resolveMask(nonToggle)
	onOffMask, onOffDirty := resolveMask(onOff)

	bit := 1 << (button - 1)
	mode := insteon.ToggleOnOff
	if toggleMask&bit != 0 {
		if onOffMask&bit != 0 {
			mode = insteon.NonToggleOn
		} else {
			mode = insteon.NonToggleOff
		}
	}

	modified := false
	if toggleDirty {
		modified = bitChanged(nonToggle, bit)
	}
	if !modified && mode != insteon.ToggleOnOff && onOffDirty {
		modified = bitChanged(onOff, bit)
	}
	return mode, modified
}

// bitChanged reports whether the given bit differs between a property's
// committed and pending values. Only meaningful while an edit is staged.
func bitChanged(p Property, bit int) bool {
	curr := intValue(p.Value()) & bit
	next := intValue(p.PendingValue()) & bit
	return curr != next
}
