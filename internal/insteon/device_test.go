package insteon

import (
	"context"
	"errors"
	"testing"
)

func newKeypad8(t *testing.T) *Device {
	t.Helper()
	d, err := NewDevice("1a.2b.3c", "Kitchen Keypad", KindKeypad8)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	return d
}

func TestNewDevice_Kinds(t *testing.T) {
	tests := []struct {
		kind        Kind
		wantButtons int
	}{
		{KindSwitch, 1},
		{KindDimmer, 1},
		{KindKeypad6, 5},
		{KindKeypad8, 8},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			d, err := NewDevice("11.22.33", "test", tt.kind)
			if err != nil {
				t.Fatalf("NewDevice() error = %v", err)
			}
			if got := len(d.Buttons()); got != tt.wantButtons {
				t.Errorf("len(Buttons()) = %d, want %d", got, tt.wantButtons)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := NewDevice("11.22.33", "test", Kind("toaster")); err == nil {
			t.Error("NewDevice() error = nil, want ErrUnknownKind")
		}
	})
}

func TestNewDevice_Keypad6Layout(t *testing.T) {
	d, err := NewDevice("11.22.33", "hall", KindKeypad6)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}

	wantIDs := []int{1, 3, 4, 5, 6}
	buttons := d.Buttons()
	if len(buttons) != len(wantIDs) {
		t.Fatalf("len(Buttons()) = %d, want %d", len(buttons), len(wantIDs))
	}
	for i, id := range wantIDs {
		if buttons[i].ID != id {
			t.Errorf("Buttons()[%d].ID = %d, want %d", i, buttons[i].ID, id)
		}
	}
}

func TestDevice_SetRadioButtons(t *testing.T) {
	d := newKeypad8(t)

	d.SetRadioButtons([]int{4, 5, 1})

	// Each member's masks reference the other members' bit positions.
	tests := []struct {
		button int
		want   int
	}{
		{1, (1 << 3) | (1 << 4)}, // buttons 4 and 5 -> 24
		{4, (1 << 0) | (1 << 4)}, // buttons 1 and 5 -> 17
		{5, (1 << 0) | (1 << 3)}, // buttons 1 and 4 -> 9
	}
	for _, tt := range tests {
		on := d.ExtendedProperties().Get(ButtonPropertyName(PropOnMask, tt.button))
		off := d.ExtendedProperties().Get(ButtonPropertyName(PropOffMask, tt.button))
		if got := on.PendingValue(); got != tt.want {
			t.Errorf("button %d on_mask pending = %v, want %d", tt.button, got, tt.want)
		}
		if got := off.PendingValue(); got != tt.want {
			t.Errorf("button %d off_mask pending = %v, want %d", tt.button, got, tt.want)
		}
	}

	// Non-members stay untouched.
	if p := d.ExtendedProperties().Get(ButtonPropertyName(PropOnMask, 2)); p.IsDirty() {
		t.Error("button 2 on_mask dirty, want clean")
	}
}

func TestDevice_SetToggleMode(t *testing.T) {
	d := newKeypad8(t)
	d.LoadValues(nil, map[string]int{
		PropNonToggleMask:      2,
		PropNonToggleOnOffMask: 2,
	})
	nonToggle := d.ExtendedProperties().Get(PropNonToggleMask)
	onOff := d.ExtendedProperties().Get(PropNonToggleOnOffMask)

	// The bit math always combines with committed mask values, so each
	// staged edit below replaces the last rather than stacking on it.
	d.SetToggleMode(1, NonToggleOn)
	if got := nonToggle.PendingValue(); got != 3 {
		t.Errorf("non_toggle_mask pending = %v, want 3", got)
	}
	if got := onOff.PendingValue(); got != 3 {
		t.Errorf("non_toggle_on_off_mask pending = %v, want 3", got)
	}

	d.SetToggleMode(1, NonToggleOff)
	if got := nonToggle.PendingValue(); got != 3 {
		t.Errorf("non_toggle_mask pending = %v, want 3", got)
	}
	// 2 &^ 1 == 2 equals the committed value, so the edit clears.
	if onOff.IsDirty() {
		t.Errorf("non_toggle_on_off_mask pending = %v, want clean", onOff.PendingValue())
	}

	d.SetToggleMode(2, ToggleOnOff)
	if got := nonToggle.PendingValue(); got != 0 {
		t.Errorf("non_toggle_mask pending = %v, want 0", got)
	}
	if got := onOff.PendingValue(); got != 0 {
		t.Errorf("non_toggle_on_off_mask pending = %v, want 0", got)
	}
}

func TestDevice_SetToggleMode_NoMasks(t *testing.T) {
	d, err := NewDevice("11.22.33", "lamp", KindDimmer)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}

	// Dimmers have no toggle masks; the call must be a no-op.
	d.SetToggleMode(1, NonToggleOn)

	if got := d.DirtyCount(); got != 0 {
		t.Errorf("DirtyCount() = %d, want 0", got)
	}
}

func TestDevice_CommitAndResetPending(t *testing.T) {
	d := newKeypad8(t)
	d.SetRadioButtons([]int{1, 2})

	if got := d.DirtyCount(); got != 4 {
		t.Fatalf("DirtyCount() = %d, want 4", got)
	}

	t.Run("reset discards all edits", func(t *testing.T) {
		d.ResetPending()
		if got := d.DirtyCount(); got != 0 {
			t.Errorf("DirtyCount() = %d, want 0", got)
		}
	})

	t.Run("commit promotes all edits", func(t *testing.T) {
		d.SetRadioButtons([]int{1, 2})
		d.CommitPending()

		if got := d.DirtyCount(); got != 0 {
			t.Errorf("DirtyCount() = %d, want 0", got)
		}
		on := d.ExtendedProperties().Get(PropOnMask)
		if got := on.Value(); got != 2 {
			t.Errorf("on_mask committed = %v, want 2", got)
		}
	})
}

// fakeLoader feeds fixed values into the device it is asked to read.
type fakeLoader struct {
	flags map[string]bool
	ext   map[string]int
	err   error
	calls int
}

func (l *fakeLoader) LoadConfig(_ context.Context, d *Device) error {
	l.calls++
	if l.err != nil {
		return l.err
	}
	d.LoadValues(l.flags, l.ext)
	return nil
}

func TestDevice_LoadConfig(t *testing.T) {
	t.Run("reads hardware and discards staged edits", func(t *testing.T) {
		d := newKeypad8(t)
		d.SetRadioButtons([]int{1, 2})
		loader := &fakeLoader{
			flags: map[string]bool{"led_on": true},
			ext:   map[string]int{PropOnLevel: 200},
		}
		d.SetLoader(loader)

		if err := d.LoadConfig(context.Background()); err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if loader.calls != 1 {
			t.Errorf("loader calls = %d, want 1", loader.calls)
		}
		if got := d.OperatingFlags().Get("led_on").Value(); got != true {
			t.Errorf("led_on committed = %v, want true", got)
		}
		if got := d.ExtendedProperties().Get(PropOnLevel).Value(); got != 200 {
			t.Errorf("on_level committed = %v, want 200", got)
		}
		if got := d.DirtyCount(); got != 0 {
			t.Errorf("DirtyCount() = %d, want 0", got)
		}
	})

	t.Run("loader error is wrapped and edits survive", func(t *testing.T) {
		d := newKeypad8(t)
		d.SetRadioButtons([]int{1, 2})
		wantErr := errors.New("modem timeout")
		d.SetLoader(&fakeLoader{err: wantErr})

		err := d.LoadConfig(context.Background())
		if !errors.Is(err, wantErr) {
			t.Fatalf("LoadConfig() error = %v, want wrapped %v", err, wantErr)
		}
		if got := d.DirtyCount(); got == 0 {
			t.Error("DirtyCount() = 0, want staged edits kept on failure")
		}
	})

	t.Run("without a loader only pending state is dropped", func(t *testing.T) {
		d := newKeypad8(t)
		d.LoadValues(nil, map[string]int{PropOnLevel: 128})
		d.ExtendedProperties().Get(PropOnLevel).SetPending(64)

		if err := d.LoadConfig(context.Background()); err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		p := d.ExtendedProperties().Get(PropOnLevel)
		if got := p.Value(); got != 128 {
			t.Errorf("on_level committed = %v, want 128", got)
		}
		if p.IsDirty() {
			t.Errorf("on_level pending = %v, want clean", p.PendingValue())
		}
	})
}
