// Package config defines the unified, format-agnostic project model every
// front-end loader translates into. The rest of the engine only ever sees
// this model; whether the project was described in HCL or YAML is invisible
// past the Loader boundary.
package config
