// Package dxl provides an abstraction layer for querying the dynamixel tool binary.
package dxl

import "errors"

// Custom error types for tool query failures. Callers collapse these into
// fallback candidate lists; they never reach the completion consumer.
var (
	// ErrNoModels is returned when the tool produced no model identifiers.
	ErrNoModels = errors.New("tool returned no models")

	// ErrNoRegisters is returned when the tool produced no registers for a model.
	ErrNoRegisters = errors.New("tool returned no registers")
)
