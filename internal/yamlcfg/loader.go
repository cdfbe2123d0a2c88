package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/fpgaflow/internal/config"
	"github.com/vk/fpgaflow/internal/ctxlog"
)

// document mirrors the EDAM-style YAML layout of a project description.
type document struct {
	Name     string `yaml:"name"`
	Toplevel string `yaml:"toplevel"`
	Flow     string `yaml:"flow"`
	Files    []struct {
		Name        string `yaml:"name"`
		FileType    string `yaml:"file_type"`
		LogicalName string `yaml:"logical_name"`
	} `yaml:"files"`
	FlowOptions map[string]any            `yaml:"flow_options"`
	ToolOptions map[string]map[string]any `yaml:"tool_options"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML project loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the YAML project file at path and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode project file %s: %w", path, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("project file %s declares no name", path)
	}

	project := &config.Project{
		Name:        doc.Name,
		Toplevel:    doc.Toplevel,
		Flow:        doc.Flow,
		FlowOptions: stringifyOptions(doc.FlowOptions),
		ToolOptions: map[string]map[string]string{},
	}
	for _, f := range doc.Files {
		project.Files = append(project.Files, config.File{
			Name:        f.Name,
			Type:        f.FileType,
			LogicalName: f.LogicalName,
		})
	}
	for tool, opts := range doc.ToolOptions {
		project.ToolOptions[tool] = stringifyOptions(opts)
	}

	logger.Debug("YAML loading complete.",
		"project", project.Name, "files", len(project.Files), "tools", len(project.ToolOptions))
	return project, nil
}

// stringifyOptions converts a free-form YAML option map into the opaque
// string map the engine carries. Scalars keep their canonical spelling, so
// `jobs: 4` arrives as "4".
func stringifyOptions(opts map[string]any) map[string]string {
	out := make(map[string]string, len(opts))
	for k, v := range opts {
		switch val := v.(type) {
		case string:
			out[k] = val
		case nil:
			out[k] = ""
		default:
			out[k] = fmt.Sprintf("%v", val)
		}
	}
	return out
}
