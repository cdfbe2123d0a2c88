package flows

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFlow is returned when a flow name is not registered.
var ErrUnknownFlow = errors.New("unknown flow")

// StageDescriptor names one tool stage inside a flow: the tool that
// implements it, the stages its output may feed, and the option overrides
// applied on top of the project's options when the stage is configured.
type StageDescriptor struct {
	Tool    string
	Next    []string
	Options map[string]string
}

// Decision is the outcome of a flow's elision hook for one stage.
type Decision int

const (
	// Keep includes the stage in the flow graph.
	Keep Decision = iota

	// Superseded drops the stage; a different stage covers its function
	// internally, so successors need no substitute input.
	Superseded

	// External drops the stage; the project must supply its output as a
	// pre-built file, which becomes the successors' input.
	External
)

// Flow is a named, ordered composition of tool stages. Stages are declared
// in topological order: a descriptor never appears before its predecessors.
type Flow struct {
	Name   string
	Stages []StageDescriptor

	// Elide decides, per stage, whether the flow options drop it from the
	// graph. Nil means no stage is ever elided. Unrecognized option values
	// must be rejected rather than silently mapped to a default path.
	Elide func(flowOpts map[string]string, stage StageDescriptor) (Decision, error)
}

// registry is populated below and read-only after process start.
var registry = map[string]Flow{
	"ise":      iseFlow,
	"icestorm": icestormFlow,
}

// Resolve looks up a flow by name, failing with ErrUnknownFlow.
func Resolve(name string) (Flow, error) {
	f, ok := registry[name]
	if !ok {
		return Flow{}, fmt.Errorf("flow %q: %w", name, ErrUnknownFlow)
	}
	return f, nil
}

// Names returns all registered flow names, sorted for stable help output.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
