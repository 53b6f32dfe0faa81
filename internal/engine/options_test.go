package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionTableRoot(t *testing.T) {
	table := OptionTable(StateRoot)

	// Global flags and every subcommand (aliases included) complete at
	// the root.
	assert.Contains(t, table, "--port")
	assert.Contains(t, table, "-P")
	assert.Contains(t, table, "--protocol")
	assert.Contains(t, table, "scan")
	assert.Contains(t, table, "read-reg")
	assert.Contains(t, table, "readb")
	assert.Contains(t, table, "writem")
	assert.Contains(t, table, "list-models")
	assert.Contains(t, table, "help")
}

func TestOptionTableLeafStates(t *testing.T) {
	tests := []struct {
		state    string
		contains []string
		excludes []string
	}{
		{StateScan, []string{"-h", "--help", "<SCAN_START>", "<SCAN_END>"}, []string{"--port", "scan"}},
		{StateReadReg, []string{"<IDS>", "<REG>"}, []string{"<VALUE>"}},
		{StateWriteReg, []string{"<IDS>", "<REG>", "<VALUE>"}, nil},
		{StateWriteUint16, []string{"-s", "--sync", "<VALUE>..."}, nil},
		{StateReadBytes, []string{"<IDS>", "<ADDRESS>", "<COUNT>"}, []string{"--sync"}},
		{StateListRegisters, []string{"<MODEL>"}, nil},
		{StateListModels, []string{"-h", "--help"}, []string{"<MODEL>"}},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			table := OptionTable(tt.state)
			for _, want := range tt.contains {
				assert.Contains(t, table, want)
			}
			for _, exclude := range tt.excludes {
				assert.NotContains(t, table, exclude)
			}
		})
	}
}

func TestOptionTableUnknownState(t *testing.T) {
	assert.Nil(t, OptionTable("dxl__scan__write__reg"))
	assert.Nil(t, OptionTable(""))
}

func TestPathValueFlags(t *testing.T) {
	for _, flag := range []string{"-p", "--port", "-b", "--baudrate", "-r", "--retries", "-P", "--protocol"} {
		assert.True(t, pathValueFlags[flag], "expected %s to take a path-like value", flag)
	}
	assert.False(t, pathValueFlags["--json"])
	assert.False(t, pathValueFlags["-f"])
}
