// Package tool defines the capability interface between the flow engine and
// the tool stages that plug into it. A stage variant implements Stage and is
// selected by the registry through its tool identifier; the engine never
// knows anything else about it.
package tool

import (
	"context"

	"github.com/vk/fpgaflow/internal/commands"
	"github.com/vk/fpgaflow/internal/config"
)

// Stage is one tool invocation step within a flow. Configure binds the
// stage to its resolved options and input artifacts and contributes build
// rules into the shared command graph.
type Stage interface {
	Configure(ctx context.Context, tc *Context) (*Result, error)
}

// Context carries everything a stage may consume while configuring itself.
type Context struct {
	// Project is the build invocation the stage belongs to.
	Project *config.Project

	// Options is the stage's resolved option map: the project's global and
	// per-tool options with the flow's per-stage overrides applied on top.
	Options map[string]string

	// Inputs names the artifacts produced by the stage's predecessors (or
	// substituted from project files when a predecessor was elided).
	Inputs []string

	// Commands is the shared rule accumulator. It is only valid for the
	// duration of the Configure call; stages must not retain it.
	Commands *commands.Graph
}

// Result reports what a configured stage produced.
type Result struct {
	// Output is the stage's primary output artifact, consumed by successor
	// stages and by default-target selection.
	Output string

	// Scripts names configure-time files (project scripts and the like)
	// the tool layer writes outside the command graph. The engine records
	// them so dependency validation treats them as sources.
	Scripts []string
}
