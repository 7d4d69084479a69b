package insteon

import "errors"

// Domain errors. Use errors.Is() to check for these in calling code.
var (
	// ErrDeviceNotFound is returned when a device address does not
	// resolve to a known device.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDeviceExists is returned when creating a device record whose
	// address is already registered.
	ErrDeviceExists = errors.New("device already exists")

	// ErrUnknownKind is returned when building a device of an
	// unrecognised kind.
	ErrUnknownKind = errors.New("unknown device kind")

	// ErrInvalidAddress is returned when a device address fails
	// validation.
	ErrInvalidAddress = errors.New("invalid device address")
)
