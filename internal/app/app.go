package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/fpgaflow/internal/config"
	"github.com/vk/fpgaflow/internal/ctxlog"
	"github.com/vk/fpgaflow/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	project  *config.Project
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	project, err := loadProject(ctx, appConfig.ProjectPath)
	if err != nil {
		// A failure to load the project is a fatal startup error.
		panic(fmt.Errorf("failed to load project: %w", err))
	}
	logger.Debug("Project loaded and translated into unified model.", "project", project.Name)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreTools
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All tool modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		project:  project,
	}
}

// Registry returns the application's tool registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Project returns the loaded project model. This is primarily for testing.
func (a *App) Project() *config.Project {
	return a.project
}
