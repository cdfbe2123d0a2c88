// Package icepack implements the icestorm bitstream packing stage.
package icepack

import (
	"context"
	"fmt"

	"github.com/vk/fpgaflow/internal/commands"
	"github.com/vk/fpgaflow/internal/ctxlog"
	"github.com/vk/fpgaflow/internal/registry"
	"github.com/vk/fpgaflow/internal/tool"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the stage factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTool("icepack", func() tool.Stage { return &Stage{} })
}

// Stage is one icepack invocation bound to a placed-and-routed design.
type Stage struct{}

// Configure contributes the rule packing the ASCII bitstream description
// into the binary bitstream.
func (s *Stage) Configure(ctx context.Context, tc *tool.Context) (*tool.Result, error) {
	logger := ctxlog.FromContext(ctx)
	name := tc.Project.Name

	if len(tc.Inputs) != 1 {
		return nil, fmt.Errorf("icepack needs exactly one input, got %d", len(tc.Inputs))
	}
	input := tc.Inputs[0]
	output := name + ".bin"

	if err := tc.Commands.Add(commands.Rule{
		Command: []string{"icepack", input, output},
		Targets: []string{output},
		Deps:    []string{input},
	}); err != nil {
		return nil, err
	}

	logger.Debug("Configured icepack stage.", "output", output, "input", input)
	return &tool.Result{Output: output}, nil
}
