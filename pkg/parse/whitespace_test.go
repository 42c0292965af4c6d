package parse_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/parsekit/pkg/parse"
)

func TestIgnoreWhitespace(t *testing.T) {
	t.Parallel()

	const (
		before = "  \t "
		infix  = "test"
		after  = " \n    \t\r\n"
		full   = before + infix + after
	)

	tests := []struct {
		name  string
		mode  parse.WhitespaceMode
		input string
		want  parse.Result[string]
	}{
		{"around", parse.Around, full, parse.Success(infix, "")},
		{"before", parse.Before, full, parse.Success(infix, after)},
		{"after with leading whitespace", parse.After, full, parse.Failure[string](full)},
		{"after", parse.After, infix + after, parse.Success(infix, "")},
		{"around scenario", parse.Around, "  test  x", parse.Success("test", "x")},
		{"around rolls back leading whitespace", parse.Around, "   nope", parse.Failure[string]("   nope")},
		{"before no whitespace", parse.Before, "test!", parse.Success("test", "!")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, parse.IgnoreWhitespace(parse.Literal(infix), tc.mode)(tc.input))
		})
	}
}

func TestIgnoreWhitespace_DefaultModeIsBefore(t *testing.T) {
	t.Parallel()

	var mode parse.WhitespaceMode
	assert.Equal(t, parse.Before, mode)

	res := parse.IgnoreWhitespace(parse.Int, mode)("   12  ")
	assert.Equal(t, parse.Success(12, "  "), res)
}

func TestWhitespaceMode_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want parse.WhitespaceMode
	}{
		{"", parse.Before},
		{"before", parse.Before},
		{"AFTER", parse.After},
		{" around ", parse.Around},
	}
	for _, tc := range tests {
		got, err := parse.ParseWhitespaceMode(tc.text)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := parse.ParseWhitespaceMode("sideways")
	require.Error(t, err)

	assert.Equal(t, "around", parse.Around.String())
	assert.Equal(t, "WhitespaceMode(9)", parse.WhitespaceMode(9).String())

	var decoded struct {
		Mode parse.WhitespaceMode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"after"}`), &decoded))
	assert.Equal(t, parse.After, decoded.Mode)

	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"after"}`, string(out))

	_, err = parse.WhitespaceMode(7).MarshalText()
	require.Error(t, err)
}
