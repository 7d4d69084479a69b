// Package insteon models the Insteon device network as seen by the
// integration: devices, their configuration properties (operating flags
// and extended properties), keypad buttons, and the staged-edit lifecycle
// used by the properties engine.
//
// Properties carry a committed value (what the physical device last
// reported) and an optional pending value (an edit staged locally but not
// yet written to the device). The package also provides the registry and
// SQLite-backed record store that the API layer resolves device addresses
// against.
package insteon
