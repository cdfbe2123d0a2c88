// Package registry provides the central "glue" for the tool plugin system.
//
// The Registry stores mappings between the tool identifiers used in flow
// tables (e.g. "yosys") and the compiled Go factories that create the
// corresponding stage instances. It is populated once at startup from the
// module list compiled into the binary and read-only afterwards.
package registry
