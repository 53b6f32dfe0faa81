package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// CompletePath generates filesystem path candidates for a partial path,
// the way compgen -f would. Directories get a trailing slash so the shell
// can descend without an extra keystroke.
func CompletePath(partial string) []string {
	dir, base := filepath.Split(partial)
	scanDir := dir
	if scanDir == "" {
		scanDir = "."
	}

	entries, err := os.ReadDir(scanDir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		// Hidden entries only when explicitly asked for
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		candidate := dir + name
		if entry.IsDir() {
			candidate += string(os.PathSeparator)
		}
		out = append(out, candidate)
	}
	return out
}
