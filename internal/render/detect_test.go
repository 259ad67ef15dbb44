package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ModeAuto, "auto": ModeAuto, "Always": ModeAlways, "never": ModeNever} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
	}
	_, err := ParseMode("rainbow")
	assert.Error(t, err)
}

func TestEnabledExplicitModes(t *testing.T) {
	assert.True(t, Enabled(ModeAlways, nil, nil))
	assert.False(t, Enabled(ModeNever, nil, nil))
}

func TestEnabledAutoHonorsEnv(t *testing.T) {
	assert.False(t, Enabled(ModeAuto, nil, map[string]string{"NO_COLOR": "1"}))
	assert.False(t, Enabled(ModeAuto, nil, map[string]string{"TERM": "dumb"}))
	// nil stdout is not a terminal
	assert.False(t, Enabled(ModeAuto, nil, map[string]string{}))
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{"A=1", "B=x=y", "EMPTY", ""})
	assert.Equal(t, "1", env["A"])
	assert.Equal(t, "x=y", env["B"])
	assert.Equal(t, "", env["EMPTY"])
}
