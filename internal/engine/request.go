// Package engine resolves completion candidates for the dxl command line.
//
// A request carries the word array bash split the current line into plus
// the index of the word under completion. Resolution is stateless: every
// request is answered from scratch, including the child-process queries
// behind dynamic candidates.
package engine

import "strings"

// Request is a single completion request.
type Request struct {
	// Words is the full token sequence, program name first.
	Words []string
	// CWord is the index of the word under completion.
	CWord int
}

// Current returns the word under completion, or "" when the cursor sits
// outside the word array (bash reports the index past the last word when
// the line ends in a space).
func (r Request) Current() string {
	if r.CWord < 0 || r.CWord >= len(r.Words) {
		return ""
	}
	return r.Words[r.CWord]
}

// Previous returns the word immediately before the cursor, or "".
func (r Request) Previous() string {
	if r.CWord-1 < 0 || r.CWord-1 >= len(r.Words) {
		return ""
	}
	return r.Words[r.CWord-1]
}

// FilterPrefix returns the candidates sharing prefix, preserving order.
func FilterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// WantsProtocol2 reports whether a protocol-version-2 selector appears
// anywhere in the word array: the short flag fused with or followed by
// the digit, or the long flag with "=" or a separate value word. The
// result only qualifies external queries; it never affects the command
// state.
func WantsProtocol2(words []string) bool {
	for i, w := range words {
		switch w {
		case "-P2", "--protocol=2":
			return true
		case "-P", "--protocol":
			if i+1 < len(words) && words[i+1] == "2" {
				return true
			}
		}
	}
	return false
}
