package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/fpgaflow/internal/config"
	"github.com/vk/fpgaflow/internal/ctxlog"
	"github.com/vk/fpgaflow/internal/fsutil"
	"github.com/vk/fpgaflow/internal/hcl"
	"github.com/vk/fpgaflow/internal/yamlcfg"
)

// projectExtensions lists the supported project file formats.
var projectExtensions = []string{".hcl", ".yml", ".yaml"}

// loadProject resolves the project path to a single project file and loads
// it with the loader matching its extension.
func loadProject(ctx context.Context, path string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("project path %s: %w", path, err)
	}

	if info.IsDir() {
		candidates, err := fsutil.FindFiles(path, projectExtensions...)
		if err != nil {
			return nil, fmt.Errorf("scanning project directory %s: %w", path, err)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("no project file found under %s", path)
		}
		if len(candidates) > 1 {
			return nil, fmt.Errorf("ambiguous project directory %s: found %d project files", path, len(candidates))
		}
		path = candidates[0]
		logger.Debug("Project file discovered in directory.", "path", path)
	}

	loader, err := loaderFor(path)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, path)
}

// loaderFor selects the format-specific loader by file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yml", ".yaml":
		return yamlcfg.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported project file format %q", filepath.Ext(path))
	}
}
