// Package dxl provides an abstraction layer for querying the dynamixel tool binary.
package dxl

import (
	"fmt"
	"strings"

	"github.com/dxltools/dxl-complete/internal/logging"
)

// regColumnWidth is the width of the fixed leading column in list-registers
// output: a 4-character address, 1-character size, 2-character access mode,
// and the separating spaces. The register name starts right after it.
const regColumnWidth = 10

// protocolArgs returns the protocol qualifier passed to the tool.
func protocolArgs(proto2 bool) []string {
	if proto2 {
		return []string{"--protocol", "2"}
	}
	return nil
}

// ListModels returns all device model identifiers known to the tool.
func (c *DefaultClient) ListModels(proto2 bool) ([]string, error) {
	args := append(protocolArgs(proto2), "list-models")
	stdout, stderr, err := c.Run(args...)
	if err != nil {
		if stderr != "" {
			logging.Debug("list-models stderr", "stderr", stderr)
		}
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	models := splitLines(stdout)
	if len(models) == 0 {
		return nil, ErrNoModels
	}
	return models, nil
}

// ListRegisters returns the register names of a device model. The fixed
// address/size/access column the tool prints before each name is stripped.
func (c *DefaultClient) ListRegisters(proto2 bool, model string) ([]string, error) {
	args := append(protocolArgs(proto2), "list-registers", model)
	stdout, stderr, err := c.Run(args...)
	if err != nil {
		if stderr != "" {
			logging.Debug("list-registers stderr", "model", model, "stderr", stderr)
		}
		return nil, fmt.Errorf("failed to list registers for %s: %w", model, err)
	}

	regs := parseRegisterLines(stdout)
	if len(regs) == 0 {
		return nil, ErrNoRegisters
	}
	return regs, nil
}

// parseRegisterLines strips the fixed leading column from each
// list-registers output line, keeping only the register names.
func parseRegisterLines(stdout string) []string {
	var regs []string
	for _, line := range splitLines(stdout) {
		if len(line) <= regColumnWidth {
			continue
		}
		regs = append(regs, line[regColumnWidth:])
	}
	return regs
}

// splitLines splits newline-delimited tool output, dropping empty lines.
func splitLines(stdout string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimRight(stdout, "\n"), "\n") {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
