// Package dxl provides an abstraction layer for querying the dynamixel tool binary.
package dxl

import (
	"strings"

	"github.com/dxltools/dxl-complete/internal/logging"
)

// ModelMatch is the result of matching a partial model identifier against
// the model registry. A prefix expands only when exactly one entry shares
// it; with zero or several matches the raw prefix passes through so that
// ambiguity is never silently resolved.
type ModelMatch struct {
	Resolved bool
	Value    string
}

// MatchModel matches prefix against the model registry.
func MatchModel(models []string, prefix string) ModelMatch {
	var hit string
	count := 0
	for _, m := range models {
		if strings.HasPrefix(m, prefix) {
			hit = m
			count++
		}
	}
	if count == 1 {
		return ModelMatch{Resolved: true, Value: hit}
	}
	return ModelMatch{Resolved: false, Value: prefix}
}

// CompleteRegisters resolves a partial "model/register" value into
// qualified register name candidates.
//
// The model part is unique-prefix expanded against the live model list,
// then the tool is queried for that model's registers. Whenever the
// register query comes up empty (model ambiguous, unknown, or without
// registers) the full model list is returned instead, so the completion
// degrades to something useful rather than to nothing. Only when the tool
// itself is unreachable is the result empty. This is the single place
// where query failures collapse into the fallback.
func CompleteRegisters(c Client, partial string, proto2 bool) []string {
	modelPart, _, _ := strings.Cut(partial, "/")

	models, err := c.ListModels(proto2)
	if err != nil {
		logging.Debug("model list unavailable", "error", err)
		return nil
	}

	match := MatchModel(models, modelPart)
	regs, err := c.ListRegisters(proto2, match.Value)
	if err != nil {
		logging.Debug("register list unavailable, falling back to models", "model", match.Value, "resolved", match.Resolved, "error", err)
		return models
	}

	qualified := make([]string, 0, len(regs))
	for _, reg := range regs {
		qualified = append(qualified, match.Value+"/"+reg)
	}
	return qualified
}

// CompleteModels returns the model list as candidates, or nothing when the
// tool is unreachable. Callers treat an empty result as "no dynamic
// candidates", never as an error.
func CompleteModels(c Client, proto2 bool) []string {
	models, err := c.ListModels(proto2)
	if err != nil {
		logging.Debug("model list unavailable", "error", err)
		return nil
	}
	return models
}
