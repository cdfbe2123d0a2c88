package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string // project description file, or a directory holding one
	Flow        string // overrides the flow named in the project file
	WorkRoot    string // directory the build rule file is written into
	Output      string // build rule file name inside WorkRoot

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkRoot == "" {
		cfg.WorkRoot = "."
	}
	if cfg.Output == "" {
		cfg.Output = "Makefile"
	}
	return &cfg, nil
}
