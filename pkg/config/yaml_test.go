package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/parsekit/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies docs patterns", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Docs.Exclude = []string{"vendor/**"}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Docs.Include[0] = "changed"
		clone.Docs.Exclude[0] = "changed"
		assert.Equal(t, "**/*.md", original.Docs.Include[0])
		assert.Equal(t, "vendor/**", original.Docs.Exclude[0])
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Grammar = "decimal"
	original.AllowRemaining = true
	original.Whitespace = "around"
	original.Format = config.FormatJSON
	original.Jobs = 4

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "grammar: decimal")
	assert.Contains(t, string(data), "allow_remaining: true")

	decoded, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	data, err := config.NewConfig().ToYAMLWithHeader("# parsekit configuration")
	require.NoError(t, err)
	assert.Regexp(t, `^# parsekit configuration\n\ngrammar: int\n`, string(data))

	var nilCfg *config.Config
	data, err = nilCfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("grammar: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestTOML(t *testing.T) {
	t.Parallel()

	data := []byte(`
grammar = "int-list"
allow_remaining = true
whitespace = "after"
format = "yaml"

[docs]
include = ["docs/**/*.md"]
`)

	cfg, err := config.Decode(".parsekit.toml", data)
	require.NoError(t, err)
	assert.Equal(t, "int-list", cfg.Grammar)
	assert.True(t, cfg.AllowRemaining)
	assert.Equal(t, "after", cfg.Whitespace)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, []string{"docs/**/*.md"}, cfg.Docs.Include)

	out, err := cfg.ToTOML()
	require.NoError(t, err)

	again, err := config.FromTOML(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestDecode_DefaultsToYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.Decode(".parsekit.yml", []byte("grammar: word\n"))
	require.NoError(t, err)
	assert.Equal(t, "word", cfg.Grammar)
}
