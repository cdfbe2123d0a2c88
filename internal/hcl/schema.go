package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a project file.
type fileRoot struct {
	Project *projectBlock `hcl:"project,block"`
}

// projectBlock represents a `project` block from a user's project file.
type projectBlock struct {
	Name        string              `hcl:"name,label"`
	Toplevel    string              `hcl:"toplevel,optional"`
	Flow        string              `hcl:"flow,optional"`
	Files       []*fileBlock        `hcl:"file,block"`
	FlowOptions *optionsBlock       `hcl:"flow_options,block"`
	ToolOptions []*toolOptionsBlock `hcl:"tool_options,block"`
}

// fileBlock represents a `file` block: one design source, constraint file
// or pre-built netlist.
type fileBlock struct {
	Name        string `hcl:"name,label"`
	Type        string `hcl:"type"`
	LogicalName string `hcl:"logical_name,optional"`
}

// optionsBlock holds free-form option attributes. The engine treats the
// values opaquely, so no schema is imposed beyond "attributes only".
type optionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// toolOptionsBlock holds the option attributes for one tool, named by the
// block label.
type toolOptionsBlock struct {
	Tool string   `hcl:"tool,label"`
	Body hcl.Body `hcl:",remain"`
}
