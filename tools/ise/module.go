// Package ise implements the Xilinx ISE stage: project creation, optional
// internal synthesis, bitstream generation and FPGA programming, all
// expressed as build rules over xtclsh batch scripts.
//
// The stage accepts a netlist from a synthesis predecessor, a pre-built
// edif file supplied with the project, or runs ISE's own synthesis when its
// "synth" option is "ise" (the default).
package ise

import (
	"context"
	"errors"

	"github.com/vk/fpgaflow/internal/commands"
	"github.com/vk/fpgaflow/internal/ctxlog"
	"github.com/vk/fpgaflow/internal/registry"
	"github.com/vk/fpgaflow/internal/tool"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the stage factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTool("ise", func() tool.Stage { return &Stage{} })
}

// Stage is one ISE invocation bound to a project.
type Stage struct{}

// Configure contributes the ISE rule set: the .xise project file, the
// synthesis path, the "synth" milestone, the bitstream, and the build-gui
// and pgm convenience targets. The referenced tcl scripts are written by
// the tool layer at configure time and only appear here as dependencies.
func (s *Stage) Configure(ctx context.Context, tc *tool.Context) (*tool.Result, error) {
	logger := ctxlog.FromContext(ctx)
	name := tc.Project.Name

	// Netlist inputs come from a synthesis predecessor, or from pre-built
	// edif files supplied with the project.
	edifFiles := append([]string{}, tc.Inputs...)
	if len(edifFiles) == 0 {
		edifFiles = tc.Project.FilesByType("edif")
	}

	synth := tc.Options["synth"]
	if synth == "" {
		synth = "ise"
	}
	if synth == "ise" && len(tc.Project.FilesByType("systemVerilogSource")) > 0 {
		return nil, errors.New("ise cannot synthesize SystemVerilog sources, use synth=yosys")
	}

	xtclsh := []string{"xtclsh"}
	projectScript := name + ".tcl"
	projectFile := name + ".xise"
	scripts := []string{projectScript}

	if err := tc.Commands.Add(commands.Rule{
		Command: append(xtclsh, projectScript),
		Targets: []string{projectFile},
		Deps:    append([]string{projectScript}, edifFiles...),
	}); err != nil {
		return nil, err
	}

	var synthTargets []string
	if synth == "ise" {
		synthScript := name + "_synth.tcl"
		scripts = append(scripts, synthScript)
		deps := []string{synthScript, projectFile}
		synthTargets = []string{name + "/__synthesis_is_complete__"}
		if err := tc.Commands.Add(commands.Rule{
			Command: append(xtclsh, deps...),
			Targets: synthTargets,
			Deps:    deps,
		}); err != nil {
			return nil, err
		}
	} else {
		synthTargets = edifFiles
	}

	// "synth" is a virtual milestone grouping whatever the synthesis path
	// produced, so `make synth` works for every configuration.
	if err := tc.Commands.Add(commands.Rule{
		Targets: []string{"synth"},
		Deps:    synthTargets,
		Phony:   true,
	}); err != nil {
		return nil, err
	}

	runScript := name + "_run.tcl"
	scripts = append(scripts, runScript)
	bitstream := name + ".bit"
	runDeps := []string{runScript, projectFile}
	if err := tc.Commands.Add(commands.Rule{
		Command: append(xtclsh, runDeps...),
		Targets: []string{bitstream},
		Deps:    runDeps,
	}); err != nil {
		return nil, err
	}

	if err := tc.Commands.Add(commands.Rule{
		Command: []string{"ise", projectFile},
		Targets: []string{"build-gui"},
		Deps:    []string{projectFile},
		Phony:   true,
	}); err != nil {
		return nil, err
	}

	pgmScript := name + "_pgm.tcl"
	scripts = append(scripts, pgmScript)
	pgmCommand := []string{"ise", "-quiet", "-nolog", "-notrace", "-mode", "batch", "-source", pgmScript, "-tclargs"}
	if part := tc.Options["part"]; part != "" {
		pgmCommand = append(pgmCommand, part)
	}
	pgmCommand = append(pgmCommand, bitstream)
	if err := tc.Commands.Add(commands.Rule{
		Command: pgmCommand,
		Targets: []string{"pgm"},
		Deps:    []string{pgmScript, bitstream},
		Phony:   true,
	}); err != nil {
		return nil, err
	}

	logger.Debug("Configured ise stage.", "bitstream", bitstream, "synth", synth, "netlists", len(edifFiles))
	return &tool.Result{Output: bitstream, Scripts: scripts}, nil
}
