package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/attune/internal/adapters/config"
	"gopkg.in/yaml.v3"
)

func TestFlexBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{`"true"`, true},
		{`"True"`, true},
		{`"TRUE"`, true},
		{`"1"`, true},
		{`"0"`, false},
		{`"on"`, true},
		{`"yes"`, true},
		{`"  on  "`, true},
		{`"off"`, false},
		{`"garbage"`, false},
		{`""`, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var b config.FlexBool
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &b))
			assert.Equal(t, tt.want, b.Bool())
		})
	}
}

func TestFlexBool_NonScalarParsesFalse(t *testing.T) {
	var b config.FlexBool
	require.NoError(t, yaml.Unmarshal([]byte("[1, 2]"), &b))
	assert.False(t, b.Bool())
}

func TestSettingsFile_EnabledAbsentStaysNil(t *testing.T) {
	var file config.SettingsFile
	require.NoError(t, yaml.Unmarshal([]byte("debounceWindow: 1s\n"), &file))

	// Absence is distinguishable from an explicit false.
	assert.Nil(t, file.Enabled)
}
