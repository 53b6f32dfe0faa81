// Package dxl provides an abstraction layer for querying the dynamixel tool binary.
package dxl

import "time"

const (
	// DefaultBinary is the tool binary invoked for dynamic candidate queries.
	DefaultBinary = "dxl"
)

// ClientOption is a functional option for configuring a Client.
type ClientOption func(*DefaultClient)

// WithBinary sets the tool binary name or path for the client.
func WithBinary(binary string) ClientOption {
	return func(c *DefaultClient) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithTimeout sets the timeout for tool invocations.
// Zero disables the timeout; the completion response then blocks for as
// long as the tool does.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *DefaultClient) {
		c.timeout = timeout
	}
}
