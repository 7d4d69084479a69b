package properties

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nerrad567/gray-logic-insteon/internal/insteon"
)

func rowNames(rows []Row) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}

func TestEnumerate_Dimmer(t *testing.T) {
	d, err := insteon.NewDevice("11.22.33", "lamp", insteon.KindDimmer)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	d.LoadValues(
		map[string]bool{"led_on": true},
		map[string]int{insteon.PropRampRate: 0x1A, insteon.PropOnLevel: 255},
	)

	rows, schema := Enumerate(Wrap(d))

	// Writable flags first in collection order, then extended properties.
	// powerline_disable_on is read-only and never surfaces.
	want := []string{
		"program_lock_on", "led_on", "key_beep_on", "resume_dim_on",
		"x10_house", "x10_unit", "led_dimming", "ramp_rate", "on_level",
	}
	if got := rowNames(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("row order = %v, want %v", got, want)
	}

	byName := make(map[string]Row, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}

	if got := byName["led_on"].Value; got != true {
		t.Errorf("led_on = %v, want true", got)
	}
	if got := schema["led_on"].Type; got != TypeBoolean {
		t.Errorf("led_on schema type = %q, want %q", got, TypeBoolean)
	}

	if got := byName["on_level"].Value; got != 255 {
		t.Errorf("on_level = %v, want 255", got)
	}
	entry := schema["on_level"]
	if entry.Type != TypeInteger || *entry.ValueMin != 0 || *entry.ValueMax != 255 {
		t.Errorf("on_level schema = %+v, want integer 0-255", entry)
	}
}

func TestEnumerate_RampRateInSeconds(t *testing.T) {
	d, err := insteon.NewDevice("11.22.33", "lamp", insteon.KindDimmer)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	d.LoadValues(nil, map[string]int{insteon.PropRampRate: 0x1A})

	rows, schema := Enumerate(Wrap(d))

	for _, row := range rows {
		if row.Name != insteon.PropRampRate {
			continue
		}
		if row.Value != 4.5 {
			t.Errorf("ramp_rate = %v, want 4.5 seconds", row.Value)
		}
	}

	entry := schema[insteon.PropRampRate]
	if entry.Type != TypeSelect {
		t.Errorf("ramp_rate schema type = %q, want %q", entry.Type, TypeSelect)
	}
	if len(entry.Options) != 31 {
		t.Errorf("len(ramp_rate options) = %d, want 31 distinct durations", len(entry.Options))
	}
	for i := 1; i < len(entry.Options); i++ {
		prev, _ := entry.Options[i-1].(float64)
		curr, _ := entry.Options[i].(float64)
		if curr <= prev {
			t.Fatalf("options not ascending at %d: %v then %v", i, prev, curr)
		}
	}
}

func TestEnumerate_KeypadMaskCluster(t *testing.T) {
	raw, dev := newKeypad8(t)
	loadGroupMasks(raw, []int{1, 4, 5})

	rows, schema := Enumerate(dev)
	names := rowNames(rows)

	// No raw mask property may surface.
	for _, name := range names {
		if strings.Contains(name, "mask") && !strings.HasPrefix(name, TogglePrefix) {
			t.Errorf("raw mask row %q leaked into output", name)
		}
	}

	// The derived cluster sits where the first mask property would have
	// been: after on_level, toggles first, then radio groups.
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}
	onLevel, ok := idx["on_level"]
	if !ok {
		t.Fatal("on_level row missing")
	}
	firstToggle, ok := idx["toggle_main"]
	if !ok {
		t.Fatal("toggle_main row missing")
	}
	firstGroup, ok := idx["radio_button_group_0"]
	if !ok {
		t.Fatal("radio_button_group_0 row missing")
	}
	if !(onLevel < firstToggle && firstToggle < firstGroup) {
		t.Errorf("cluster order wrong: on_level=%d toggle_main=%d radio_button_group_0=%d",
			onLevel, firstToggle, firstGroup)
	}

	// Eight toggle rows, one real group, one empty group row.
	toggles := 0
	groups := 0
	for _, name := range names {
		switch {
		case strings.HasPrefix(name, TogglePrefix):
			toggles++
		case strings.HasPrefix(name, RadioButtonGroupPrefix):
			groups++
		}
	}
	if toggles != 8 {
		t.Errorf("toggle rows = %d, want 8", toggles)
	}
	if groups != 2 {
		t.Errorf("radio group rows = %d, want 2", groups)
	}

	// The cluster appears exactly once even though the device has many
	// mask properties.
	if len(names) != len(schema) {
		t.Errorf("rows = %d, schema entries = %d, want equal", len(names), len(schema))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate row %q", name)
		}
		seen[name] = true
	}
}
