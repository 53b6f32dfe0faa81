package engine

import (
	"strings"

	"github.com/dxltools/dxl-complete/internal/dxl"
	"github.com/dxltools/dxl-complete/internal/logging"
)

// Positional slots for the dynamic arguments, counted from the program
// name. The guard keeps the dynamic resolvers from firing on the wrong
// argument of the same subcommand.
const (
	// regArgIndex is the register slot: dxl read-reg <ids> <model/reg>.
	regArgIndex = 3
	// modelArgIndex is the model slot: dxl list-registers <model>.
	modelArgIndex = 2
)

// Resolver answers completion requests. It holds no state between
// requests beyond the client used for dynamic queries.
type Resolver struct {
	client dxl.Client
}

// NewResolver creates a Resolver backed by the given tool client.
func NewResolver(client dxl.Client) *Resolver {
	return &Resolver{client: client}
}

// Complete resolves the candidate list for a request. The result is
// prefix-filtered against the word under completion; failures of the
// dynamic sources degrade the list but never surface as errors.
func (r *Resolver) Complete(req Request) []string {
	cur := req.Current()
	prev := req.Previous()
	state := ResolveState(req.Words)
	proto2 := WantsProtocol2(req.Words)

	logging.Debug("completion request", "state", state, "cword", req.CWord, "current", cur, "previous", prev, "proto2", proto2)

	// Flags, and the slot where the subcommand name itself is typed, are
	// always answered from the static table.
	if strings.HasPrefix(cur, "-") || req.CWord == 1 {
		return FilterPrefix(OptionTable(state), cur)
	}

	// Flags that take a value complete like a path.
	if pathValueFlags[prev] {
		return CompletePath(cur)
	}

	switch state {
	case StateReadReg, StateWriteReg:
		if req.CWord == regArgIndex {
			return FilterPrefix(dxl.CompleteRegisters(r.client, cur, proto2), cur)
		}
	case StateListRegisters:
		if req.CWord == modelArgIndex {
			return FilterPrefix(dxl.CompleteModels(r.client, proto2), cur)
		}
	}

	return FilterPrefix(OptionTable(state), cur)
}
