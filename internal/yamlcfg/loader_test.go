package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("edam style document", func(t *testing.T) {
		path := writeProjectFile(t, `
name: top
toplevel: top
flow: ise
files:
  - name: top.v
    file_type: verilogSource
  - name: top.ucf
    file_type: UCF
  - name: pkg.vhd
    file_type: vhdlSource
    logical_name: mylib
flow_options:
  synth: none
tool_options:
  ise:
    family: spartan6
    device: xc6slx45
    jobs: 4
`)
		project, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "top", project.Name)
		assert.Equal(t, "ise", project.Flow)
		require.Len(t, project.Files, 3)
		assert.Equal(t, "UCF", project.Files[1].Type)
		assert.Equal(t, "mylib", project.Files[2].LogicalName)
		assert.Equal(t, "none", project.FlowOptions["synth"])
		assert.Equal(t, "spartan6", project.ToolOptions["ise"]["family"])
		assert.Equal(t, "4", project.ToolOptions["ise"]["jobs"],
			"numeric options arrive as their canonical string form")
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeProjectFile(t, `toplevel: top`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "declares no name")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeProjectFile(t, "name: [broken")
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to read")
	})
}
