package commands

import "slices"

// Rule is one unit of build work: a command line plus the targets it
// produces and the dependencies that must be current before it runs.
type Rule struct {
	// Command is the argument vector to execute. An empty command is legal
	// for pure grouping rules.
	Command []string

	// Targets is the non-empty set of identifiers this rule produces.
	Targets []string

	// Deps names the targets of other rules, or plain source files, that
	// must exist before Command runs.
	Deps []string

	// Phony marks every target of this rule as virtual: a grouping label
	// with no physical artifact behind it. Virtual targets are always
	// serialized so the executor re-evaluates them even when a file of the
	// same name happens to exist on disk.
	Phony bool
}

// equivalent reports whether two rules are the same declaration: identical
// targets, command, dependencies and phony marker, in the same order.
func (r Rule) equivalent(other Rule) bool {
	return r.Phony == other.Phony &&
		slices.Equal(r.Targets, other.Targets) &&
		slices.Equal(r.Command, other.Command) &&
		slices.Equal(r.Deps, other.Deps)
}
