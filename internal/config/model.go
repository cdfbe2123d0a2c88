package config

import "strings"

// Project is the format-agnostic representation of one build invocation:
// the design sources, the selected flow and the option maps the tool stages
// consume. Option values are opaque strings; the engine only inspects the
// reserved elision switches (e.g. flow_options "synth").
type Project struct {
	// Name is the project/build name, used to derive canonical output file
	// names such as <name>.bit.
	Name string

	// Toplevel is the name of the top-level design unit.
	Toplevel string

	// Flow optionally selects the flow to run; a CLI flag may override it.
	Flow string

	// Files lists design sources, constraints and pre-built netlists in
	// declaration order.
	Files []File

	// FlowOptions is the global option map applied to every stage.
	FlowOptions map[string]string

	// ToolOptions maps a tool identifier to its per-tool option map.
	ToolOptions map[string]map[string]string
}

// File is one design source, constraint file or pre-built netlist.
type File struct {
	Name        string
	Type        string
	LogicalName string
}

// FilesByType returns the names of all files whose type matches t,
// preserving declaration order. A type with a dash-separated revision
// suffix matches its base type, so "verilogSource-2001" files are returned
// for t == "verilogSource".
func (p *Project) FilesByType(t string) []string {
	var names []string
	for _, f := range p.Files {
		if f.Type == t || strings.HasPrefix(f.Type, t+"-") {
			names = append(names, f.Name)
		}
	}
	return names
}

// ToolOptionsFor returns the project's option map for a tool, never nil.
func (p *Project) ToolOptionsFor(tool string) map[string]string {
	if opts, ok := p.ToolOptions[tool]; ok {
		return opts
	}
	return map[string]string{}
}
