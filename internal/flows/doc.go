// Package flows is the static stage registry: a read-only table mapping a
// flow name to the ordered tool stages that implement it. It is pure data;
// instantiating and configuring the stages is the job of package flow.
package flows
