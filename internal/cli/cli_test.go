package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/parsekit/internal/cli"
	"github.com/yaklabco/parsekit/pkg/reporter"
)

//nolint:gochecknoglobals // Shared test fixture.
var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

// execute runs the root command with args and stdin, returning its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--color", "never"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)
	assert.Equal(t, "parsekit", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"parse", "grammars", "check", "demo", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestParseCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	parseCmd, _, err := cmd.Find([]string{"parse"})
	require.NoError(t, err)

	for _, name := range []string{
		"grammar", "allow-remaining", "trim", "format", "file", "stdin",
		"jobs", "failures-only", "no-context", "compact",
	} {
		assert.NotNil(t, parseCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "g", parseCmd.Flags().Lookup("grammar").Shorthand)
}

func parseJSON(t *testing.T, out string) reporter.Output {
	t.Helper()

	var output reporter.Output
	require.NoError(t, json.Unmarshal([]byte(out), &output), out)
	return output
}

func TestParse_AllMatched(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "parse", "--format", "json", "--", "42", "-7", "+3")
	require.NoError(t, err)

	output := parseJSON(t, out)
	assert.Equal(t, "int", output.Grammar)
	require.Len(t, output.Results, 3)
	assert.InDelta(t, 42, output.Results[0].Value, 0)
	assert.InDelta(t, -7, output.Results[1].Value, 0)
	assert.Equal(t, 3, output.Summary.Matched)
}

func TestParse_RejectedInput(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "parse", "--format", "json", "12abc", "test")
	require.ErrorIs(t, err, cli.ErrParseFailures)
	assert.True(t, cli.IsSilentError(err))
	assert.Equal(t, cli.ExitFailures, cli.ExitCode(err))

	output := parseJSON(t, out)
	require.Len(t, output.Results, 2)
	assert.False(t, output.Results[0].Matched)
	assert.Equal(t, "abc", output.Results[0].Remaining)
	require.NotNil(t, output.Results[0].Offset)
	assert.Equal(t, 2, *output.Results[0].Offset)
	assert.False(t, output.Results[1].Matched)
	assert.Equal(t, 2, output.Summary.Failed)
}

func TestParse_AllowRemaining(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "parse", "--allow-remaining", "--format", "json", "896847 stuff")
	require.NoError(t, err)

	output := parseJSON(t, out)
	require.Len(t, output.Results, 1)
	assert.True(t, output.Results[0].Matched)
	assert.InDelta(t, 896847, output.Results[0].Value, 0)
}

func TestParse_AllowRemainingFlagOverridesConfigFile(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "parsekit.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("allow_remaining: true\n"), 0o644))

	_, err := execute(t, "", "--config", cfgPath, "parse", "--format", "json", "896847 stuff")
	require.NoError(t, err)

	out, err := execute(t, "", "--config", cfgPath, "parse", "--allow-remaining=false", "--format", "json", "896847 stuff")
	require.ErrorIs(t, err, cli.ErrParseFailures)

	output := parseJSON(t, out)
	require.Len(t, output.Results, 1)
	assert.False(t, output.Results[0].Matched)
	assert.Equal(t, " stuff", output.Results[0].Remaining)
}

func TestParse_GrammarAndTrim(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "parse", "-g", "dec", "--trim", "around", "--format", "json", "  -12.50 ")
	require.NoError(t, err)

	output := parseJSON(t, out)
	assert.Equal(t, "decimal", output.Grammar)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "-12.5", output.Results[0].Value)
}

func TestParse_Stdin(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "1\r\n\n2\n", "parse", "--format", "json")
	require.NoError(t, err)

	output := parseJSON(t, out)
	require.Len(t, output.Results, 2)
	assert.Equal(t, "stdin", output.Results[0].Source)
	assert.Equal(t, 1, output.Results[0].Line)
	assert.Equal(t, 3, output.Results[1].Line)
}

func TestParse_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("7\n8 9\n"), 0o644))

	out, err := execute(t, "", "parse", "-g", "int-pair", "--color", "never", "--file", path, "--", " 00034 230 ")
	require.ErrorIs(t, err, cli.ErrParseFailures)

	assert.Contains(t, out, "[34 230]")
	assert.Contains(t, out, path+":2")
	assert.Contains(t, out, "with grammar int-pair")
}

func TestParse_TextOutputShowsWhereParsingStopped(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "parse", "12abc")
	require.ErrorIs(t, err, cli.ErrParseFailures)

	assert.Contains(t, out, "arg 1")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "1 of 1 inputs failed")
}

func TestParse_UnknownGrammar(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "parse", "-g", "nope", "1")
	require.ErrorIs(t, err, cli.ErrConfig)
	assert.False(t, cli.IsSilentError(err))
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestParse_InvalidTrim(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "parse", "--trim", "sideways", "1")
	require.ErrorIs(t, err, cli.ErrConfig)
}

func TestGrammarsCommand(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "", "grammars")
		require.NoError(t, err)
		assert.Contains(t, out, "int-pair")
		assert.Contains(t, out, "aliases: pair, demo")
		assert.Contains(t, out, `example: " 00034 230 "`)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "", "grammars", "--format", "json")
		require.NoError(t, err)

		var infos []struct {
			Name    string   `json:"name"`
			Aliases []string `json:"aliases"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &infos))
		require.NotEmpty(t, infos)
		assert.Equal(t, "decimal", infos[0].Name)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "", "grammars", "--format", "xml")
		require.Error(t, err)
	})
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := "# Numbers\n\n```parsekit int\n42\n!4x2\n```\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(doc), 0o644))

	out, err := execute(t, "", "check", "--verbose", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "README.md:4")
	assert.Contains(t, out, "2 examples in 1 files: 2 passed, 0 failed")

	bad := "```parsekit int\nforty-two\n```\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte(bad), 0o644))

	out, err = execute(t, "", "check", dir)
	require.ErrorIs(t, err, cli.ErrExamplesFailed)
	assert.Contains(t, out, "bad.md:2")
	assert.NotContains(t, out, "README.md:4")
	assert.Contains(t, out, "1 failed")
}

func TestDemoCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "demo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `Int("test") = failure, rest "test"`, lines[0])
	assert.Equal(t, `Int("896847 stuff") = success 896847, rest " stuff"`, lines[1])
	assert.Equal(t, `Finalize(IntPair)(" 00034 230 ") = [34 230]`, lines[2])
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "parsekit.yml")
	_, err := execute(t, "", "init", "--output", yamlPath)
	require.NoError(t, err)

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# parsekit configuration"))
	assert.Contains(t, string(data), "grammar: int")

	_, err = execute(t, "", "init", "--output", yamlPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "", "init", "--output", yamlPath, "--force")
	require.NoError(t, err)

	tomlPath := filepath.Join(dir, "parsekit.toml")
	_, err = execute(t, "", "init", "--format", "toml", "--output", tomlPath)
	require.NoError(t, err)

	data, err = os.ReadFile(tomlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "grammar = 'int'")

	_, err = execute(t, "", "init", "--format", "ini", "--output", filepath.Join(dir, "x"))
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "test-commit")
}

func TestHelpListsGrammars(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "parse", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Grammars:")
	assert.Contains(t, out, "int-list")
	assert.Contains(t, out, "--allow-remaining")
	assert.Contains(t, out, "Global Flags:")
}

func TestRootHelpListsEnvironment(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Environment:")
	assert.Contains(t, out, "PARSEKIT_GRAMMAR")
	assert.Contains(t, out, "PARSEKIT_ALLOW_REMAINING")

	out, err = execute(t, "", "parse", "--help")
	require.NoError(t, err)
	assert.NotContains(t, out, "Environment:")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(cli.ErrNoInputs))
	assert.Equal(t, cli.ExitFailures, cli.ExitCode(errors.New("boom")))
	assert.True(t, cli.IsSilentError(cli.ErrExamplesFailed))
}
