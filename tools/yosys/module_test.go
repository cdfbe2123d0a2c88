package yosys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fpgaflow/internal/commands"
	"github.com/vk/fpgaflow/internal/config"
	"github.com/vk/fpgaflow/internal/tool"
)

func TestConfigure(t *testing.T) {
	project := &config.Project{
		Name: "blinky",
		Files: []config.File{
			{Name: "blinky.v", Type: "verilogSource"},
			{Name: "timer.sv", Type: "systemVerilogSource"},
			{Name: "blinky.pcf", Type: "PCF"},
		},
	}

	t.Run("emits one synthesis rule", func(t *testing.T) {
		cmds := commands.New()
		result, err := (&Stage{}).Configure(context.Background(), &tool.Context{
			Project:  project,
			Options:  map[string]string{"arch": "xilinx", "output_format": "edif"},
			Commands: cmds,
		})
		require.NoError(t, err)

		assert.Equal(t, "blinky.edif", result.Output)
		assert.Equal(t, []string{"blinky.ys"}, result.Scripts)

		rule, ok := cmds.Lookup("blinky.edif")
		require.True(t, ok)
		assert.Equal(t, []string{"yosys", "-l", "yosys.log", "-s", "blinky.ys"}, rule.Command)
		assert.Equal(t, []string{"blinky.ys", "blinky.v", "timer.sv"}, rule.Deps,
			"constraint files are not synthesis inputs")
	})

	t.Run("output format defaults to json", func(t *testing.T) {
		result, err := (&Stage{}).Configure(context.Background(), &tool.Context{
			Project:  project,
			Options:  map[string]string{},
			Commands: commands.New(),
		})
		require.NoError(t, err)
		assert.Equal(t, "blinky.json", result.Output)
	})

	t.Run("fails without HDL sources", func(t *testing.T) {
		empty := &config.Project{Name: "empty"}
		_, err := (&Stage{}).Configure(context.Background(), &tool.Context{
			Project:  empty,
			Options:  map[string]string{},
			Commands: commands.New(),
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "no HDL sources")
	})
}
