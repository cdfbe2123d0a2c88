package icepack

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
	t.Run("packing rule", func(t *testing.T) {
		cmds := commands.New()
		result, err := (&Stage{}).Configure(context.Background(), &tool.Context{
			Project:  &config.Project{Name: "blinky"},
			Options:  map[string]string{},
			Inputs:   []string{"blinky.asc"},
			Commands: cmds,
		})
		require.NoError(t, err)
		assert.Equal(t, "blinky.bin", result.Output)

		rule, ok := cmds.Lookup("blinky.bin")
		require.True(t, ok)
		assert.Equal(t, []string{"icepack", "blinky.asc", "blinky.bin"}, rule.Command)
		assert.Equal(t, []string{"blinky.asc"}, rule.Deps)
	})

	t.Run("requires exactly one input", func(t *testing.T) {
		_, err := (&Stage{}).Configure(context.Background(), &tool.Context{
			Project:  &config.Project{Name: "blinky"},
			Options:  map[string]string{},
			Commands: commands.New(),
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "exactly one input")
	})
}
