package cmd

import (
	"fmt"
	"time"

	"github.com/dxltools/dxl-complete/internal/config"
	"github.com/dxltools/dxl-complete/internal/dxl"
	"github.com/dxltools/dxl-complete/internal/engine"
	"github.com/dxltools/dxl-complete/internal/logging"
	"github.com/spf13/cobra"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Resolve completion candidates for the current command line",
	Long: `Resolve completion candidates for the current command line.

USAGE:
    dxl-complete complete --cword <n> -- <word>...

The words are the COMP_WORDS array bash split the line into, program name
first; --cword is COMP_CWORD, the index of the word under completion.
Candidates are printed one per line. The command always exits zero: when
the dxl tool cannot be queried the candidate list degrades, it does not
error.`,
	Run: runComplete,
}

var completeCWord int

// completeFunc resolves a request against a live tool client. Variable so
// tests can substitute the resolution.
var completeFunc = func(req engine.Request) []string {
	client := dxl.NewDefaultClient(
		dxl.WithBinary(config.Get("tool", dxl.DefaultBinary)),
		dxl.WithTimeout(time.Duration(config.GetInt("timeout_ms", 0))*time.Millisecond),
	)
	return engine.NewResolver(client).Complete(req)
}

func init() {
	rootCmd.AddCommand(completeCmd)

	completeCmd.Flags().IntVar(&completeCWord, "cword", 0, "Index of the word under completion (COMP_CWORD)")
}

func runComplete(cmd *cobra.Command, args []string) {
	config.Load()

	logger, err := logging.Init(logging.FromGlobalConfig())
	if err == nil {
		logging.SetGlobal(logger)
		defer logging.ShutdownGlobal()
	}
	for _, w := range config.Warnings() {
		logging.Warn(w)
	}

	if len(args) == 0 {
		// Nothing to complete; stay silent rather than erroring, bash is
		// reading stdout.
		return
	}

	req := engine.Request{Words: args, CWord: completeCWord}
	for _, candidate := range completeFunc(req) {
		fmt.Fprintln(cmd.OutOrStdout(), candidate)
	}
}
