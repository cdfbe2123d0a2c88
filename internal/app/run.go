package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/fpgaflow/internal/commands"
	"github.com/vk/fpgaflow/internal/ctxlog"
	"github.com/vk/fpgaflow/internal/flow"
	"github.com/vk/fpgaflow/internal/flows"
)

// Run executes the main application logic: resolve the selected flow, build
// the flow graph, and serialize the accumulated build rules.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	flowName := a.config.Flow
	if flowName == "" {
		flowName = a.project.Flow
	}
	if flowName == "" {
		return errors.New("no flow selected: pass -flow or set it in the project file")
	}

	f, err := flows.Resolve(flowName)
	if err != nil {
		return err
	}
	a.logger.Debug("Flow resolved.", "flow", f.Name, "declared_stages", len(f.Stages))

	cmds := commands.New()
	graph, err := flow.Build(ctx, f, a.project, a.registry, cmds)
	if err != nil {
		return fmt.Errorf("failed to build flow graph: %w", err)
	}
	a.logger.Debug("Flow graph built.", "stage_count", len(graph.Stages))

	outPath := filepath.Join(a.config.WorkRoot, a.config.Output)
	if err := cmds.Write(outPath); err != nil {
		return fmt.Errorf("failed to write build rules: %w", err)
	}

	a.logger.Info("🏁 Build rules written.",
		"path", outPath,
		"rules", len(cmds.Rules()),
		"default_target", cmds.DefaultTarget(),
		"stages", len(graph.Stages))

	a.logger.Debug("App.Run method finished.")
	return nil
}
