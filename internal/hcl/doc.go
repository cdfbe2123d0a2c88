// Package hcl is the HCL-specific project file front-end. It parses a
// project description written in HCL and translates it into the
// format-agnostic config model consumed by the flow engine.
package hcl
