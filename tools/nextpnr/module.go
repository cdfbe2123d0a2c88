// Package nextpnr implements the nextpnr-ice40 place & route stage.
package nextpnr

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
	r.RegisterTool("nextpnr", func() tool.Stage { return &Stage{} })
}

// Stage is one nextpnr invocation bound to a synthesized netlist.
type Stage struct{}

// Configure contributes the place & route rule producing the ASCII
// bitstream description.
func (s *Stage) Configure(ctx context.Context, tc *tool.Context) (*tool.Result, error) {
	logger := ctxlog.FromContext(ctx)
	name := tc.Project.Name

	netlists := append([]string{}, tc.Inputs...)
	if len(netlists) == 0 {
		netlists = tc.Project.FilesByType("jsonNetlist")
	}
	if len(netlists) != 1 {
		return nil, fmt.Errorf("nextpnr needs exactly one netlist input, got %d", len(netlists))
	}
	netlist := netlists[0]

	arch := tc.Options["arch"]
	if arch == "" {
		arch = "ice40"
	}

	command := []string{"nextpnr-" + arch}
	if device := tc.Options["device"]; device != "" {
		command = append(command, "--"+device)
	}
	if pkg := tc.Options["package"]; pkg != "" {
		command = append(command, "--package", pkg)
	}

	deps := []string{netlist}
	for _, pcf := range tc.Project.FilesByType("PCF") {
		command = append(command, "--pcf", pcf)
		deps = append(deps, pcf)
	}

	output := name + ".asc"
	command = append(command, "--json", netlist, "--asc", output)

	if err := tc.Commands.Add(commands.Rule{
		Command: command,
		Targets: []string{output},
		Deps:    deps,
	}); err != nil {
		return nil, err
	}

	logger.Debug("Configured nextpnr stage.", "output", output, "arch", arch, "netlist", netlist)
	return &tool.Result{Output: output}, nil
}
