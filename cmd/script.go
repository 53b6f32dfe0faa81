package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// scriptCmd represents the script command
var scriptCmd = &cobra.Command{
	Use:   "script [shell]",
	Short: "Print the shell glue that wires completion to this binary",
	Long: `Print the shell glue that wires completion to this binary.

USAGE:
    dxl-complete script bash

Source the output (or drop it into your completion directory) to enable
completion for the dxl tool:

    source <(dxl-complete script bash)`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash"},
	RunE:      runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

// bashScript is the completion function handed to bash. It forwards the
// word array and cursor index verbatim; all resolution happens in this
// binary so the shell side stays a thin pipe.
const bashScript = `# bash completion for dxl, generated by dxl-complete
_dxl_complete() {
    local IFS=$'\n'
    COMPREPLY=( $(dxl-complete complete --cword "$COMP_CWORD" -- "${COMP_WORDS[@]}" 2>/dev/null) )
    return 0
}
complete -o filenames -F _dxl_complete dxl dynamixel-tool
`

func runScript(cmd *cobra.Command, args []string) error {
	shell := "bash"
	if len(args) == 1 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(cmd.OutOrStdout(), bashScript)
		return nil
	default:
		return fmt.Errorf("unsupported shell %q (only bash is supported)", shell)
	}
}
