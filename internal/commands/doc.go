// Package commands is the execution-facing half of the flow engine. Tool
// stages contribute build rules into a shared Graph while they are being
// configured; the finished graph is serialized as a Makefile that an
// external build executor runs incrementally.
//
// The graph itself never executes anything. Its obligations end at rejecting
// inconsistent rule sets and emitting a deterministic, cycle-free dependency
// description with a single default target.
package commands
