package insteon

// Well-known extended property names. Per-button mask properties append
// "_{button}" for buttons other than 1 (see ButtonPropertyName).
const (
	PropOnMask             = "on_mask"
	PropOffMask            = "off_mask"
	PropNonToggleMask      = "non_toggle_mask"
	PropNonToggleOnOffMask = "non_toggle_on_off_mask"
	PropRampRate           = "ramp_rate"
	PropOnLevel            = "on_level"
	PropLEDDimming         = "led_dimming"
	PropX10House           = "x10_house"
	PropX10Unit            = "x10_unit"
	PropTriggerGroupMask   = "trigger_group_mask"
)

// Property is a single device configuration setting. The committed value
// is what the device last reported; the pending value is an edit staged
// locally and not yet written to hardware. Values are either bool
// (operating flags) or int in 0..255 (extended properties).
//
// Staging a pending value equal to the committed value clears the pending
// value, so a pending value, when present, always differs from the
// committed one. IsDirty is therefore equivalent to "a pending value is
// present".
type Property struct {
	name     string
	value    any
	pending  any
	readOnly bool
}

// NewFlag returns a boolean operating-flag property, committed false.
func NewFlag(name string, readOnly bool) *Property {
	return &Property{name: name, value: false, readOnly: readOnly}
}

// NewByteProperty returns an integer extended property, committed zero.
func NewByteProperty(name string, readOnly bool) *Property {
	return &Property{name: name, value: 0, readOnly: readOnly}
}

// Name returns the property name, unique within its collection.
func (p *Property) Name() string { return p.name }

// Value returns the committed value (bool or int).
func (p *Property) Value() any { return p.value }

// PendingValue returns the staged edit, or nil when none is staged.
func (p *Property) PendingValue() any { return p.pending }

// IsReadOnly reports whether the property rejects edits.
func (p *Property) IsReadOnly() bool { return p.readOnly }

// IsDirty reports whether an edit is staged.
func (p *Property) IsDirty() bool { return p.pending != nil }

// SetPending stages an edit. Read-only properties ignore the call.
// Staging the committed value clears any staged edit instead; the
// property reads as clean again.
func (p *Property) SetPending(v any) {
	if p.readOnly {
		return
	}
	if v == p.value {
		p.pending = nil
		return
	}
	p.pending = v
}

// Load sets the committed value (a read from the device) and drops any
// staged edit.
func (p *Property) Load(v any) {
	p.value = v
	p.pending = nil
}

// Commit promotes the staged edit to the committed value, as after a
// successful device write. No-op when clean.
func (p *Property) Commit() {
	if p.pending == nil {
		return
	}
	p.value = p.pending
	p.pending = nil
}

// Reset discards the staged edit.
func (p *Property) Reset() { p.pending = nil }

// PropertySet is an insertion-ordered collection of properties keyed by
// name. Iteration order is the order properties were added, which the
// enumerator relies on for stable row ordering.
type PropertySet struct {
	order []string
	byKey map[string]*Property
}

// NewPropertySet returns an empty property set.
func NewPropertySet() *PropertySet {
	return &PropertySet{byKey: make(map[string]*Property)}
}

// Add appends a property. Re-adding an existing name replaces the value
// in place without changing its position.
func (s *PropertySet) Add(p *Property) {
	if _, ok := s.byKey[p.name]; !ok {
		s.order = append(s.order, p.name)
	}
	s.byKey[p.name] = p
}

// Get returns the named property, or nil when absent.
func (s *PropertySet) Get(name string) *Property { return s.byKey[name] }

// Names returns the property names in insertion order.
func (s *PropertySet) Names() []string { return s.order }

// Len returns the number of properties in the set.
func (s *PropertySet) Len() int { return len(s.order) }
