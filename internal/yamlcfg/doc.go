// Package yamlcfg is the YAML project file front-end. It reads EDAM-style
// YAML documents, the interchange format the wider EDA tooling ecosystem
// already speaks, and translates them into the format-agnostic config model.
package yamlcfg
