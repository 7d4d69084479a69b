package properties

// UI property name prefixes for the derived mask rows.
const (
	// RadioButtonGroupPrefix prefixes derived radio-group rows; the
	// numeric suffix is the group index in discovery order.
	RadioButtonGroupPrefix = "radio_button_group_"

	// TogglePrefix prefixes derived per-button toggle rows; the suffix
	// is the button display name.
	TogglePrefix = "toggle_"
)

// Editor types for schema entries.
const (
	TypeBoolean     = "boolean"
	TypeInteger     = "integer"
	TypeSelect      = "select"
	TypeMultiSelect = "multi_select"
)

// Row is one UI-facing property: its name, effective value (pending edit
// if staged, committed otherwise) and whether an edit is staged. Rows are
// produced fresh on every enumeration and never persisted.
type Row struct {
	Name     string `json:"name"`
	Value    any    `json:"value"`
	Modified bool   `json:"modified"`
}

// SchemaEntry describes how the front end should render the editor for
// one row.
type SchemaEntry struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Type     string `json:"type"`
	Options  []any  `json:"options,omitempty"`
	ValueMin *int   `json:"value_min,omitempty"`
	ValueMax *int   `json:"value_max,omitempty"`
}

// Schema maps row names to their editor descriptors.
type Schema map[string]SchemaEntry

const byteMax = 255

// boolSchema describes a plain boolean editor.
func boolSchema(name string) SchemaEntry {
	return SchemaEntry{Name: name, Required: true, Type: TypeBoolean}
}

// byteSchema describes a 0-255 integer editor.
func byteSchema(name string) SchemaEntry {
	minVal, maxVal := 0, byteMax
	return SchemaEntry{
		Name:     name,
		Required: true,
		Type:     TypeInteger,
		ValueMin: &minVal,
		ValueMax: &maxVal,
	}
}
