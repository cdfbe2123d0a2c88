// Package flow turns a registered flow table into a project-bound graph of
// configured tool stages. It walks the stage descriptors in dependency
// order, applies configuration-driven elision, wires each stage's inputs to
// its predecessors' outputs and lets every stage contribute its build rules
// into the shared command graph.
//
// Construction is single-threaded by design: each stage's inputs depend on
// the identifiers its predecessors chose to produce, and the command graph
// is a single sequentially mutated structure.
package flow
