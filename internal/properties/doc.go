// Package properties translates between the packed bitmask representation
// of Insteon device configuration and the semantic, UI-facing property
// rows the front end edits.
//
// Enumerate flattens a device's operating flags and extended properties
// into rows plus a per-name schema describing how to render each editor,
// decoding the shared on/off-mask pairs into radio-button groups and the
// two toggle masks into per-button toggle modes. Apply reverses the
// mapping, staging pending edits on the underlying mask properties.
//
// The engine is pure computation over the Device capability interface:
// no I/O, no locking, no errors. Callers serialise access per device.
package properties
