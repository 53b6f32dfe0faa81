package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestScriptBash(t *testing.T) {
	out := runCommand(t, "script", "bash")

	if !strings.Contains(out, "_dxl_complete()") {
		t.Errorf("script should define the completion function, got %q", out)
	}
	if !strings.Contains(out, `complete -o filenames -F _dxl_complete dxl dynamixel-tool`) {
		t.Errorf("script should register completion for both tool names, got %q", out)
	}
	if !strings.Contains(out, `--cword "$COMP_CWORD"`) {
		t.Errorf("script should forward COMP_CWORD, got %q", out)
	}
	if !strings.Contains(out, `"${COMP_WORDS[@]}"`) {
		t.Errorf("script should forward the word array, got %q", out)
	}
}

func TestScriptDefaultsToBash(t *testing.T) {
	withShell := runCommand(t, "script", "bash")
	withoutShell := runCommand(t, "script")

	if withShell != withoutShell {
		t.Error("bare script invocation should produce the bash script")
	}
}

func TestScriptUnsupportedShell(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"script", "zsh"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unsupported shell")
	}
}
