package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStateBasics(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"empty sequence", nil, ""},
		{"bare invocation", []string{"dxl"}, StateRoot},
		{"invocation by path", []string{"/usr/local/bin/dxl"}, StateRoot},
		{"leaf subcommand", []string{"dxl", "read-reg"}, StateReadReg},
		{"subcommand after flags", []string{"dxl", "-p", "/dev/ttyUSB0", "scan"}, StateScan},
		{"alias resolves like full name", []string{"dxl", "readb"}, StateReadUint8},
		{"write alias", []string{"dxl", "writew"}, StateWriteUint32},
		{"help alone", []string{"dxl", "help"}, StateHelp},
		{"partial keyword is not a keyword", []string{"dxl", "read-re"}, StateRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveState(tt.words))
		})
	}
}

func TestResolveStateAccumulatesSuffixes(t *testing.T) {
	// Two subcommand keywords produce a compound label. Compounds other
	// than help combinations are not in the dispatch tables, so the net
	// effect is the documented last-keyword-wins behavior at dispatch.
	state := ResolveState([]string{"dxl", "write-reg", "list-models"})
	assert.Equal(t, "dxl__write__reg__list__models", state)
	assert.Nil(t, OptionTable(state))
}

func TestResolveStateOrderInsensitiveDispatch(t *testing.T) {
	// Both orderings yield compound labels that dispatch identically
	// (to the no-op branch): presence matters, position does not.
	a := ResolveState([]string{"dxl", "write-reg", "list-models"})
	b := ResolveState([]string{"dxl", "list-models", "1", "write-reg"})
	assert.Equal(t, OptionTable(a), OptionTable(b))
}

func TestResolveStateHelpCombines(t *testing.T) {
	state := ResolveState([]string{"dxl", "help"})
	assert.Equal(t, StateHelp, state)
	assert.Equal(t, Subcommands, OptionTable(state))
}

func TestResolveStateKeywordAnywhere(t *testing.T) {
	// A keyword after the cursor position still contributes: the scan
	// covers the entire sequence, not just the words before the cursor.
	state := ResolveState([]string{"dxl", "1", "2", "scan"})
	assert.Equal(t, StateScan, state)
}
