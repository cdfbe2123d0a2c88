package config

import "context"

// Loader is the interface for a format-specific project file loader. A
// loader reads a single project description file and translates it into the
// format-agnostic model.
type Loader interface {
	Load(ctx context.Context, path string) (*Project, error)
}
