// Package dxl provides an abstraction layer for querying the dynamixel
// tool binary. The completion engine never speaks the servo protocol
// itself; it shells out to the tool's list-models and list-registers
// commands and consumes their stdout.
package dxl

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/dxltools/dxl-complete/internal/logging"
)

// Client is an interface that abstracts all dynamixel tool invocations.
type Client interface {
	// ListModels returns all known device model identifiers.
	ListModels(proto2 bool) ([]string, error)

	// ListRegisters returns the register names of a device model.
	ListRegisters(proto2 bool, model string) ([]string, error)

	// Run executes the tool with the given arguments.
	Run(args ...string) (string, string, error)
}

// DefaultClient implements Client using exec.Command to run the tool.
type DefaultClient struct {
	binary  string
	timeout time.Duration
}

// NewDefaultClient creates a new DefaultClient with the given options.
func NewDefaultClient(opts ...ClientOption) *DefaultClient {
	client := &DefaultClient{
		binary: DefaultBinary,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// runCommand executes the tool with the given arguments.
// It returns stdout, stderr, and any error that occurred.
func (c *DefaultClient) runCommand(args ...string) (string, string, error) {
	start := time.Now()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	logging.Debug("tool query started", "binary", c.binary, "command", command, "args_count", len(args))

	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start).Seconds()
	if err != nil {
		logging.Debug("tool query failed", "binary", c.binary, "command", command, "error", err, "duration_seconds", duration)
	} else {
		logging.Debug("tool query completed", "binary", c.binary, "command", command, "duration_seconds", duration)
	}
	return stdout.String(), stderr.String(), err
}

// Run executes the tool with the given arguments.
// It returns stdout, stderr, and any error that occurred. The stderr
// capture exists for logging only; callers of the listing operations
// discard it.
func (c *DefaultClient) Run(args ...string) (string, string, error) {
	return c.runCommand(args...)
}
