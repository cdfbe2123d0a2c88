// Package yosys implements the yosys synthesis stage: it turns the
// project's HDL sources into a netlist in the format the flow asks for
// (edif for ISE, json for nextpnr).
package yosys

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
	r.RegisterTool("yosys", func() tool.Stage { return &Stage{} })
}

// Stage is one yosys invocation bound to a project's sources.
type Stage struct{}

// Configure contributes the synthesis rule. The yosys script itself is
// written by the tool layer at configure time; the rule only names it as a
// dependency.
func (s *Stage) Configure(ctx context.Context, tc *tool.Context) (*tool.Result, error) {
	logger := ctxlog.FromContext(ctx)
	name := tc.Project.Name

	format := tc.Options["output_format"]
	if format == "" {
		format = "json"
	}

	var sources []string
	sources = append(sources, tc.Project.FilesByType("verilogSource")...)
	sources = append(sources, tc.Project.FilesByType("systemVerilogSource")...)
	if len(sources) == 0 {
		return nil, fmt.Errorf("project %q has no HDL sources to synthesize", name)
	}

	script := name + ".ys"
	output := name + "." + format

	rule := commands.Rule{
		Command: []string{"yosys", "-l", "yosys.log", "-s", script},
		Targets: []string{output},
		Deps:    append([]string{script}, sources...),
	}
	if err := tc.Commands.Add(rule); err != nil {
		return nil, err
	}

	logger.Debug("Configured yosys stage.", "output", output, "sources", len(sources), "arch", tc.Options["arch"])
	return &tool.Result{Output: output, Scripts: []string{script}}, nil
}
