package commands

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrConflictingRule is returned when a target is re-declared with a
	// different command or dependency set than its original rule.
	ErrConflictingRule = errors.New("conflicting rule")

	// ErrDefaultTargetAlreadySet is returned when a second, different
	// default target is requested for the same graph.
	ErrDefaultTargetAlreadySet = errors.New("default target already set")

	// ErrGraphFinalized is returned when rules are added to a graph that
	// has already been serialized.
	ErrGraphFinalized = errors.New("command graph is finalized")
)

// Graph accumulates the build rules contributed by flow stages. Rules are
// kept in insertion order so serialization is deterministic. A graph is
// Open until its first successful Write, after which it no longer accepts
// rules.
//
// Graph is not safe for concurrent use; stages are configured sequentially
// in topological order and contribute one at a time.
type Graph struct {
	rules         []Rule
	byTarget      map[string]int // target identifier -> index into rules
	defaultTarget string
	finalized     bool
}

// New creates an empty, open command graph.
func New() *Graph {
	return &Graph{byTarget: make(map[string]int)}
}

// Add appends a rule to the graph. Re-adding a rule identical to one
// already present is a no-op. Declaring a target that an earlier rule
// already owns with a different command or dependency set fails with
// ErrConflictingRule naming the duplicated target.
func (g *Graph) Add(r Rule) error {
	if g.finalized {
		return fmt.Errorf("cannot add rule for %v: %w", r.Targets, ErrGraphFinalized)
	}
	if len(r.Targets) == 0 {
		return errors.New("rule must declare at least one target")
	}

	for _, target := range r.Targets {
		idx, ok := g.byTarget[target]
		if !ok {
			continue
		}
		prev := g.rules[idx]
		if prev.equivalent(r) {
			// Idempotent re-declaration of the exact same rule.
			return nil
		}
		if !slices.Equal(prev.Command, r.Command) || !slices.Equal(prev.Deps, r.Deps) {
			return fmt.Errorf("target %q: %w", target, ErrConflictingRule)
		}
	}

	g.rules = append(g.rules, r)
	for _, target := range r.Targets {
		if _, ok := g.byTarget[target]; !ok {
			g.byTarget[target] = len(g.rules) - 1
		}
	}
	return nil
}

// SetDefaultTarget records the target built when the executor is invoked
// without an explicit goal. The decision is final: calling it again with
// the same value is a no-op, a different value fails with
// ErrDefaultTargetAlreadySet.
func (g *Graph) SetDefaultTarget(target string) error {
	if g.defaultTarget != "" && g.defaultTarget != target {
		return fmt.Errorf("cannot change default target from %q to %q: %w",
			g.defaultTarget, target, ErrDefaultTargetAlreadySet)
	}
	g.defaultTarget = target
	return nil
}

// DefaultTarget returns the default target, or "" if none has been set.
func (g *Graph) DefaultTarget() string {
	return g.defaultTarget
}

// Rules returns the accumulated rules in insertion order.
func (g *Graph) Rules() []Rule {
	return slices.Clone(g.rules)
}

// Lookup returns the rule that owns the given target identifier.
func (g *Graph) Lookup(target string) (Rule, bool) {
	idx, ok := g.byTarget[target]
	if !ok {
		return Rule{}, false
	}
	return g.rules[idx], true
}
