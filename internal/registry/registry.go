package registry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/fpgaflow/internal/tool"
)

// ErrUnknownTool is returned when a flow references a tool identifier no
// compiled-in module has registered.
var ErrUnknownTool = errors.New("unknown tool")

// Factory creates a fresh stage instance for one build invocation.
type Factory func() tool.Stage

// Module is the interface all tool packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered stage factories for a single application
// instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// RegisterTool registers a stage factory under a tool identifier. A
// duplicate identifier is a programmer error.
func (r *Registry) RegisterTool(toolID string, f Factory) {
	if _, exists := r.factories[toolID]; exists {
		panic(fmt.Sprintf("tool %q already registered", toolID))
	}
	slog.Debug("Registering tool stage.", "tool", toolID)
	r.factories[toolID] = f
}

// NewStage instantiates a stage for the given tool identifier.
func (r *Registry) NewStage(toolID string) (tool.Stage, error) {
	f, ok := r.factories[toolID]
	if !ok {
		return nil, fmt.Errorf("tool %q: %w", toolID, ErrUnknownTool)
	}
	return f(), nil
}

// Tools returns the registered tool identifiers.
func (r *Registry) Tools() []string {
	tools := make([]string, 0, len(r.factories))
	for id := range r.factories {
		tools = append(tools, id)
	}
	return tools
}
