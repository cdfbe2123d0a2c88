package flow

// Stage is one configured tool instance inside a resolved flow graph.
type Stage struct {
	// Tool is the identifier of the tool variant that implements the stage.
	Tool string

	// Options is the stage's resolved option map (project options with the
	// flow's per-stage overrides applied on top, override wins key by key).
	Options map[string]string

	// Inputs names the artifacts the stage consumes.
	Inputs []string

	// Output is the primary artifact the stage reported after configuring.
	Output string

	// Scripts names the configure-time files the stage's tool layer writes
	// outside the command graph.
	Scripts []string
}

// Graph is the resolved, project-bound instantiation of a flow: the
// included stages in topological order plus the project name used to derive
// canonical output file names. It is immutable after Build returns.
type Graph struct {
	Name   string
	Stages []*Stage
}
