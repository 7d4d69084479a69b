package properties

import (
	"strconv"
	"strings"

	"github.com/nerrad567/gray-logic-insteon/internal/insteon"
)

// Apply stages one property edit on a device. The name decides the
// dispatch: radio-group rows rewrite the member masks, toggle rows
// rewrite one button's mode bits, ramp rate converts seconds back to its
// wire code, and everything else stages the value directly on the named
// flag or extended property. Unknown names and unusable values are
// silently ignored so a stale UI submission never faults the session.
func Apply(d Device, name string, value any) {
	switch {
	case strings.HasPrefix(name, RadioButtonGroupPrefix):
		applyRadioGroup(d, name, value)
	case strings.HasPrefix(name, TogglePrefix):
		applyToggleMode(d, name, value)
	case name == insteon.PropRampRate:
		if seconds, ok := toFloat(value); ok {
			if p := d.Property(name); p != nil {
				p.SetPending(insteon.SecondsToRampRate(seconds))
			}
		}
	default:
		// Operating flags only take booleans; any other value type skips
		// the flag and falls through to the extended properties.
		if _, ok := value.(bool); ok {
			if p := d.Flag(name); p != nil {
				p.SetPending(value)
				return
			}
		}
		if p := d.Property(name); p != nil {
			p.SetPending(normalize(value))
		}
	}
}

// applyRadioGroup replaces the membership of one decoded group. The old
// members' masks are cleared first so buttons removed from the group do
// not keep stale links; the new membership is then staged in one pass.
// A submission that leaves fewer than two members only performs the
// clear, dissolving the group.
func applyRadioGroup(d Device, name string, value any) {
	index, err := strconv.Atoi(strings.TrimPrefix(name, RadioButtonGroupPrefix))
	if err != nil || index < 0 {
		return
	}

	groups := DecodeGroups(d)
	if index < len(groups) {
		for _, id := range groups[index] {
			if p := d.Property(insteon.ButtonPropertyName(insteon.PropOnMask, id)); p != nil {
				p.SetPending(0)
			}
			if p := d.Property(insteon.ButtonPropertyName(insteon.PropOffMask, id)); p != nil {
				p.SetPending(0)
			}
		}
	}

	names, ok := toStringSlice(value)
	if !ok {
		return
	}
	var members []int
	for _, b := range d.Buttons() {
		for _, n := range names {
			if b.Name == n {
				members = append(members, b.ID)
				break
			}
		}
	}
	if len(members) > 1 {
		d.SetRadioButtons(members)
	}
}

// applyToggleMode stages a toggle mode change for the button named in the
// row suffix.
func applyToggleMode(d Device, name string, value any) {
	buttonName := strings.TrimPrefix(name, TogglePrefix)
	var button int
	for _, b := range d.Buttons() {
		if b.Name == buttonName {
			button = b.ID
			break
		}
	}
	if button == 0 {
		return
	}
	f, ok := toFloat(value)
	if !ok {
		return
	}
	mode := insteon.ToggleMode(int(f))
	if !mode.Valid() {
		return
	}
	d.SetToggleMode(button, mode)
}

// normalize maps decoded JSON values onto the property value domain:
// whole-number floats become ints, everything else passes through.
func normalize(v any) any {
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return v
}

// toFloat coerces a numeric value of any decoded JSON shape.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// toStringSlice coerces a decoded JSON array to its string members.
func toStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}
