package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/fpgaflow/internal/config"
)

// translateProject converts the HCL-specific project schema into the
// agnostic model.
func (l *Loader) translateProject(p *projectBlock) (*config.Project, error) {
	project := &config.Project{
		Name:        p.Name,
		Toplevel:    p.Toplevel,
		Flow:        p.Flow,
		FlowOptions: map[string]string{},
		ToolOptions: map[string]map[string]string{},
	}

	for _, f := range p.Files {
		project.Files = append(project.Files, config.File{
			Name:        f.Name,
			Type:        f.Type,
			LogicalName: f.LogicalName,
		})
	}

	if p.FlowOptions != nil {
		opts, err := extractOptions(p.FlowOptions.Body)
		if err != nil {
			return nil, fmt.Errorf("flow_options: %w", err)
		}
		project.FlowOptions = opts
	}

	for _, block := range p.ToolOptions {
		if _, dup := project.ToolOptions[block.Tool]; dup {
			return nil, fmt.Errorf("duplicate tool_options block for %q", block.Tool)
		}
		opts, err := extractOptions(block.Body)
		if err != nil {
			return nil, fmt.Errorf("tool_options %q: %w", block.Tool, err)
		}
		project.ToolOptions[block.Tool] = opts
	}

	return project, nil
}

// extractOptions flattens an attribute-only body into an opaque string map.
// Values are converted through cty so numbers and bools spelled without
// quotes still land as their canonical string form.
func extractOptions(body hcl.Body) (map[string]string, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("options must be plain attributes: %w", diags)
	}

	opts := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("option %q: %w", name, diags)
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("option %q is not convertible to a string: %w", name, err)
		}
		if str.IsNull() {
			return nil, fmt.Errorf("option %q is null", name)
		}
		opts[name] = str.AsString()
	}
	return opts, nil
}
