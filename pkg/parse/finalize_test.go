package parse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/parsekit/pkg/parse"
)

func TestFinalize_Int(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		allowRemaining bool
		input          string
		want           int
		wantErr        error
	}{
		{"exact", false, "3", 3, nil},
		{"remaining allowed", true, "3_ignore_this", 3, nil},
		{"remaining rejected", false, "3_this_is_bad", 0, parse.ErrUnparsedInput},
		{"no match allowed", true, "what?", 0, parse.ErrNoMatch},
		{"no match strict", false, "what?", 0, parse.ErrNoMatch},
		{"scenario strict", false, "3_junk", 0, parse.ErrUnparsedInput},
		{"scenario lenient", true, "3_junk", 3, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			final := parse.Finalize(parse.Int, parse.AllowRemainingIf(tc.allowRemaining))
			got, err := final(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFinalize_Literal(t *testing.T) {
	t.Parallel()

	strict := parse.Finalize(parse.Literal("test"))
	lenient := parse.Finalize(parse.Literal("test"), parse.AllowRemaining())

	got, err := strict("test")
	require.NoError(t, err)
	assert.Equal(t, "test", got)

	got, err = lenient("test fine")
	require.NoError(t, err)
	assert.Equal(t, "test", got)

	_, err = strict("test nope")
	require.ErrorIs(t, err, parse.ErrUnparsedInput)

	_, err = lenient("bad")
	require.ErrorIs(t, err, parse.ErrNoMatch)

	_, err = strict("bad")
	require.ErrorIs(t, err, parse.ErrNoMatch)
}

func TestFinalize_Error(t *testing.T) {
	t.Parallel()

	_, err := parse.Finalize(parse.Int)("12 apples")

	var finalErr *parse.FinalizeError
	require.ErrorAs(t, err, &finalErr)
	assert.Equal(t, "12 apples", finalErr.Input)
	assert.Equal(t, " apples", finalErr.Remaining)
	assert.Equal(t, 2, finalErr.Offset())
	assert.Equal(t, `unparsed input remaining at offset 2: " apples"`, err.Error())

	_, err = parse.Finalize(parse.Int)("nothing here")
	require.ErrorAs(t, err, &finalErr)
	assert.Equal(t, 0, finalErr.Offset())
	assert.Equal(t, `input did not match: "nothing here"`, err.Error())
	assert.False(t, errors.Is(err, parse.ErrUnparsedInput))
}

func TestFinalize_TruncatesLongInput(t *testing.T) {
	t.Parallel()

	_, err := parse.Finalize(parse.Literal("x"))("abcdefghijklmnopqrstuvwxyz0123456789")
	require.Error(t, err)
	assert.Equal(t, `input did not match: "abcdefghijklmnopqrstuvwxyz012345..."`, err.Error())
}

func TestFinalize_NoValue(t *testing.T) {
	t.Parallel()

	got, err := parse.Finalize(parse.EOF[int]())("")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestFinalize_DemoPair(t *testing.T) {
	t.Parallel()

	pair := parse.Finalize(parse.Must(parse.Chain(
		parse.IgnoreWhitespace(parse.Int, parse.Before),
		parse.IgnoreWhitespace(parse.Int, parse.Around),
	)))

	got, err := pair(" 00034 230 ")
	require.NoError(t, err)
	assert.Equal(t, []int{34, 230}, got)
}
