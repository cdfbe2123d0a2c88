package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/fpgaflow/internal/commands"
	"github.com/vk/fpgaflow/internal/config"
	"github.com/vk/fpgaflow/internal/ctxlog"
	"github.com/vk/fpgaflow/internal/flows"
	"github.com/vk/fpgaflow/internal/registry"
	"github.com/vk/fpgaflow/internal/tool"
)

var (
	// ErrCycleDetected is returned when a flow's stage descriptors violate
	// the DAG invariant.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrMissingPredecessorOutput is returned when a stage was elided in
	// favor of an externally supplied artifact but the project provides no
	// file that can stand in for the stage's output.
	ErrMissingPredecessorOutput = errors.New("missing predecessor output")

	// ErrDanglingDependency is returned when a dependency reachable from
	// the default target resolves to neither a rule target, a project file
	// nor a configure-time script.
	ErrDanglingDependency = errors.New("dangling dependency")
)

// Build instantiates and configures the stages of a flow in dependency
// order, accumulating their build rules into cmds. On success the default
// target of cmds points at the terminal stage's primary output and every
// dependency reachable from it resolves to a known producer.
func Build(ctx context.Context, f flows.Flow, project *config.Project, reg *registry.Registry, cmds *commands.Graph) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting flow graph construction.", "flow", f.Name, "project", project.Name)

	if err := validateDescriptors(f); err != nil {
		return nil, err
	}
	logger.Debug("Build: descriptor validation passed.", "stage_count", len(f.Stages))

	decisions, err := decideElision(f, project)
	if err != nil {
		return nil, err
	}

	graph := &Graph{Name: project.Name}
	outputs := make(map[string]string) // tool id -> configured primary output
	var scripts []string

	for _, desc := range f.Stages {
		if decisions[desc.Tool] != flows.Keep {
			logger.Debug("Build: stage elided.", "tool", desc.Tool)
			continue
		}

		inputs, err := stageInputs(f, desc, project, decisions, outputs)
		if err != nil {
			return nil, err
		}

		instance, err := reg.NewStage(desc.Tool)
		if err != nil {
			return nil, fmt.Errorf("flow %q: %w", f.Name, err)
		}

		stage := &Stage{
			Tool:    desc.Tool,
			Options: resolveOptions(project, desc),
			Inputs:  inputs,
		}
		logger.Debug("Build: configuring stage.", "tool", desc.Tool, "inputs", inputs)

		result, err := instance.Configure(ctx, &tool.Context{
			Project:  project,
			Options:  stage.Options,
			Inputs:   inputs,
			Commands: cmds,
		})
		if err != nil {
			return nil, fmt.Errorf("configuring stage %q: %w", desc.Tool, err)
		}

		stage.Output = result.Output
		stage.Scripts = result.Scripts
		outputs[desc.Tool] = result.Output
		scripts = append(scripts, result.Scripts...)
		graph.Stages = append(graph.Stages, stage)
	}

	if len(graph.Stages) == 0 {
		return nil, fmt.Errorf("flow %q has no stages left after elision", f.Name)
	}

	terminal := graph.Stages[len(graph.Stages)-1]
	if terminal.Output == "" {
		return nil, fmt.Errorf("terminal stage %q reported no primary output", terminal.Tool)
	}
	if err := cmds.SetDefaultTarget(terminal.Output); err != nil {
		return nil, err
	}
	logger.Debug("Build: default target set.", "target", terminal.Output)

	if err := validateDependencies(project, scripts, cmds); err != nil {
		return nil, err
	}

	logger.Debug("Build: flow graph construction successful.", "stage_count", len(graph.Stages))
	return graph, nil
}

// validateDescriptors checks the structural invariants of a flow table:
// unique tools, successor references inside the flow, acyclicity, and
// declaration order matching dependency order.
func validateDescriptors(f flows.Flow) error {
	if len(f.Stages) == 0 {
		return fmt.Errorf("flow %q declares no stages", f.Name)
	}

	index := make(map[string]int, len(f.Stages))
	for i, desc := range f.Stages {
		if _, dup := index[desc.Tool]; dup {
			return fmt.Errorf("flow %q declares tool %q twice", f.Name, desc.Tool)
		}
		index[desc.Tool] = i
	}

	for i, desc := range f.Stages {
		for _, next := range desc.Next {
			j, ok := index[next]
			if !ok {
				return fmt.Errorf("flow %q: stage %q references unknown successor %q", f.Name, desc.Tool, next)
			}
			if j == i {
				return fmt.Errorf("flow %q: stage %q lists itself as successor: %w", f.Name, desc.Tool, ErrCycleDetected)
			}
		}
	}

	if err := detectCycles(f, index); err != nil {
		return err
	}

	// Declaration order doubles as the configuration order, so a successor
	// must never be declared before its predecessor.
	for i, desc := range f.Stages {
		for _, next := range desc.Next {
			if index[next] < i {
				return fmt.Errorf("flow %q: stage %q is declared before its predecessor %q", f.Name, next, desc.Tool)
			}
		}
	}
	return nil
}

// detectCycles runs a depth-first search over the successor edges using the
// classic three-color scheme.
func detectCycles(f flows.Flow, index map[string]int) error {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)

	var visit func(toolID string) error
	visit = func(toolID string) error {
		visiting[toolID] = true
		for _, next := range f.Stages[index[toolID]].Next {
			if visiting[next] {
				return fmt.Errorf("flow %q: stage %q: %w", f.Name, next, ErrCycleDetected)
			}
			if !visited[next] {
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		delete(visiting, toolID)
		visited[toolID] = true
		return nil
	}

	for _, desc := range f.Stages {
		if !visited[desc.Tool] {
			if err := visit(desc.Tool); err != nil {
				return err
			}
		}
	}
	return nil
}

// decideElision runs the flow's elision hook for every stage. Errors fail
// the build: an unrecognized switch value never silently selects a default
// path.
func decideElision(f flows.Flow, project *config.Project) (map[string]flows.Decision, error) {
	decisions := make(map[string]flows.Decision, len(f.Stages))
	for _, desc := range f.Stages {
		decision := flows.Keep
		if f.Elide != nil {
			var err error
			decision, err = f.Elide(project.FlowOptions, desc)
			if err != nil {
				return nil, fmt.Errorf("flow %q: %w", f.Name, err)
			}
		}
		decisions[desc.Tool] = decision
	}
	return decisions, nil
}

// stageInputs resolves the artifacts a stage consumes: the primary outputs
// of its configured predecessors, or substitute project files when a
// predecessor was elided in favor of an external artifact.
func stageInputs(f flows.Flow, desc flows.StageDescriptor, project *config.Project, decisions map[string]flows.Decision, outputs map[string]string) ([]string, error) {
	var inputs []string
	for _, pred := range f.Stages {
		if !listsSuccessor(pred, desc.Tool) {
			continue
		}
		switch decisions[pred.Tool] {
		case flows.Keep:
			if out := outputs[pred.Tool]; out != "" {
				inputs = append(inputs, out)
			}
		case flows.External:
			format := pred.Options["output_format"]
			substitutes := project.FilesByType(format)
			if len(substitutes) == 0 {
				return nil, fmt.Errorf("stage %q needs %q from elided stage %q but the project supplies no %s file: %w",
					desc.Tool, project.Name+"."+format, pred.Tool, format, ErrMissingPredecessorOutput)
			}
			inputs = append(inputs, substitutes...)
		case flows.Superseded:
			// The successor covers the elided stage's function itself.
		}
	}
	return inputs, nil
}

func listsSuccessor(desc flows.StageDescriptor, toolID string) bool {
	for _, next := range desc.Next {
		if next == toolID {
			return true
		}
	}
	return false
}

// resolveOptions merges the project's global flow options, its per-tool
// options and the descriptor's overrides. Later maps win key by key.
func resolveOptions(project *config.Project, desc flows.StageDescriptor) map[string]string {
	resolved := make(map[string]string)
	for k, v := range project.FlowOptions {
		resolved[k] = v
	}
	for k, v := range project.ToolOptionsFor(desc.Tool) {
		resolved[k] = v
	}
	for k, v := range desc.Options {
		resolved[k] = v
	}
	return resolved
}

// validateDependencies walks the dependency closure of the default target
// and checks that every identifier resolves to a rule target, a project
// file, or a configure-time script a stage declared.
func validateDependencies(project *config.Project, scripts []string, cmds *commands.Graph) error {
	known := make(map[string]bool)
	for _, f := range project.Files {
		known[f.Name] = true
	}
	for _, s := range scripts {
		known[s] = true
	}

	visited := make(map[string]bool)
	pending := []string{cmds.DefaultTarget()}
	for len(pending) > 0 {
		id := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		if rule, ok := cmds.Lookup(id); ok {
			pending = append(pending, rule.Deps...)
			continue
		}
		if !known[id] {
			return fmt.Errorf("identifier %q reachable from default target %q: %w",
				id, cmds.DefaultTarget(), ErrDanglingDependency)
		}
	}
	return nil
}
