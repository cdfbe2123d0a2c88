package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// specGraph builds the two-stage synthesize/place-route rule set used across
// the serialization tests.
func specGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	require.NoError(t, g.Add(Rule{
		Command: []string{"synth_tool", "top.src"},
		Targets: []string{"top.edif"},
		Deps:    []string{"top.src"},
	}))
	require.NoError(t, g.Add(Rule{
		Command: []string{"pnr_tool", "top.edif"},
		Targets: []string{"top.bit"},
		Deps:    []string{"top.edif"},
	}))
	require.NoError(t, g.SetDefaultTarget("top.bit"))
	return g
}

func TestWrite(t *testing.T) {
	t.Run("serializes rules, default goal and phony list", func(t *testing.T) {
		g := specGraph(t)
		require.NoError(t, g.Add(Rule{Targets: []string{"synth"}, Deps: []string{"top.edif"}, Phony: true}))

		path := filepath.Join(t.TempDir(), "Makefile")
		require.NoError(t, g.Write(path))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		content := string(raw)

		assert.Contains(t, content, "all: top.bit\n")
		assert.Contains(t, content, "top.edif: top.src\n\tsynth_tool top.src\n")
		assert.Contains(t, content, "top.bit: top.edif\n\tpnr_tool top.edif\n")
		assert.Contains(t, content, "synth: top.edif\n")
		assert.Contains(t, content, ".PHONY: all synth\n")
	})

	t.Run("serialization is deterministic", func(t *testing.T) {
		g := specGraph(t)
		dir := t.TempDir()

		first := filepath.Join(dir, "Makefile.1")
		second := filepath.Join(dir, "Makefile.2")
		require.NoError(t, g.Write(first))
		require.NoError(t, g.Write(second))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b, "two serializations of the same graph must be byte-identical")
	})

	t.Run("write finalizes the graph", func(t *testing.T) {
		g := specGraph(t)
		require.NoError(t, g.Write(filepath.Join(t.TempDir(), "Makefile")))

		err := g.Add(Rule{Targets: []string{"late"}, Deps: []string{"top.bit"}})
		require.ErrorIs(t, err, ErrGraphFinalized)
	})

	t.Run("fails without a default target", func(t *testing.T) {
		g := New()
		require.NoError(t, g.Add(Rule{Targets: []string{"a"}}))
		err := g.Write(filepath.Join(t.TempDir(), "Makefile"))
		assert.ErrorContains(t, err, "no default target")
	})

	t.Run("leaves no file behind on failure", func(t *testing.T) {
		g := specGraph(t)
		missingDir := filepath.Join(t.TempDir(), "does", "not", "exist")
		path := filepath.Join(missingDir, "Makefile")

		err := g.Write(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, path)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no partial output may exist after a failed write")

		// The graph stays open after a failed write.
		assert.NoError(t, g.Add(Rule{Targets: []string{"late"}, Deps: []string{"top.bit"}}))
	})

	t.Run("virtual-only rule is still serialized", func(t *testing.T) {
		g := New()
		require.NoError(t, g.Add(Rule{Targets: []string{"pgm"}, Deps: []string{"top.bit"}, Phony: true}))
		require.NoError(t, g.SetDefaultTarget("pgm"))

		path := filepath.Join(t.TempDir(), "Makefile")
		require.NoError(t, g.Write(path))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "pgm: top.bit\n")
		assert.Contains(t, string(raw), ".PHONY: all pgm\n")
	})
}
