package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/parsekit/pkg/config"
	"github.com/yaklabco/parsekit/pkg/parse"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, "int", cfg.Grammar)
	assert.False(t, cfg.AllowRemaining)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, []string{"**/*.md"}, cfg.Docs.Include)
	require.NoError(t, cfg.Validate())
}

func TestConfig_WhitespaceMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		wantMode parse.WhitespaceMode
		wantTrim bool
		wantErr  bool
	}{
		{"", parse.Before, false, false},
		{"none", parse.Before, false, false},
		{"before", parse.Before, true, false},
		{"after", parse.After, true, false},
		{"around", parse.Around, true, false},
		{"diagonal", parse.Before, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Whitespace: tc.value}
			mode, trim, err := cfg.WhitespaceMode()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, mode)
			assert.Equal(t, tc.wantTrim, trim)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Format:     "xml",
		Color:      "sometimes",
		Whitespace: "diagonal",
		Jobs:       -1,
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"format", "color", "whitespace", "jobs"} {
		assert.Contains(t, err.Error(), field+":")
	}

	var nilCfg *config.Config
	require.NoError(t, nilCfg.Validate())

	require.NoError(t, (&config.Config{}).Validate())
}
