package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("known flows resolve", func(t *testing.T) {
		ise, err := Resolve("ise")
		require.NoError(t, err)
		assert.Equal(t, "ise", ise.Name)
		require.Len(t, ise.Stages, 2)
		assert.Equal(t, "yosys", ise.Stages[0].Tool)
		assert.Equal(t, []string{"ise"}, ise.Stages[0].Next)

		icestorm, err := Resolve("icestorm")
		require.NoError(t, err)
		require.Len(t, icestorm.Stages, 3)
		assert.Equal(t, "icepack", icestorm.Stages[2].Tool)
	})

	t.Run("unknown flow fails with its name attached", func(t *testing.T) {
		_, err := Resolve("unknown_flow")
		require.ErrorIs(t, err, ErrUnknownFlow)
		assert.ErrorContains(t, err, "unknown_flow")
	})
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"icestorm", "ise"}, Names())
}

func TestIseFlowElision(t *testing.T) {
	flow, err := Resolve("ise")
	require.NoError(t, err)
	require.NotNil(t, flow.Elide)
	yosysStage := flow.Stages[0]
	iseStage := flow.Stages[1]

	t.Run("yosys kept when explicitly selected", func(t *testing.T) {
		d, err := flow.Elide(map[string]string{"synth": "yosys"}, yosysStage)
		require.NoError(t, err)
		assert.Equal(t, Keep, d)
	})

	t.Run("yosys superseded by default", func(t *testing.T) {
		for _, synth := range []string{"", "ise"} {
			d, err := flow.Elide(map[string]string{"synth": synth}, yosysStage)
			require.NoError(t, err)
			assert.Equal(t, Superseded, d, "synth=%q", synth)
		}
	})

	t.Run("external netlist requires a substitute", func(t *testing.T) {
		d, err := flow.Elide(map[string]string{"synth": "none"}, yosysStage)
		require.NoError(t, err)
		assert.Equal(t, External, d)
	})

	t.Run("unrecognized synth value fails closed", func(t *testing.T) {
		_, err := flow.Elide(map[string]string{"synth": "vivado"}, yosysStage)
		require.Error(t, err)
		assert.ErrorContains(t, err, "vivado")
	})

	t.Run("non-synth stages are never elided", func(t *testing.T) {
		d, err := flow.Elide(map[string]string{"synth": "none"}, iseStage)
		require.NoError(t, err)
		assert.Equal(t, Keep, d)
	})
}
