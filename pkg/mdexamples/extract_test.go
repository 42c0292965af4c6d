package mdexamples_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/parsekit/pkg/mdexamples"
)

const sampleDoc = "# Integers\n" +
	"\n" +
	"Plain text.\n" +
	"\n" +
	"```parsekit int\n" +
	"42\n" +
	"\n" +
	"!abc\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"fmt.Println(1)\n" +
	"```\n" +
	"\n" +
	"~~~parsekit\n" +
	"-7\n" +
	"~~~\n"

func TestExtract(t *testing.T) {
	t.Parallel()

	examples := mdexamples.Extract("doc.md", []byte(sampleDoc))
	require.Len(t, examples, 3)

	assert.Equal(t, mdexamples.Example{File: "doc.md", Line: 6, Grammar: "int", Input: "42"}, examples[0])
	assert.Equal(t, mdexamples.Example{File: "doc.md", Line: 8, Grammar: "int", Input: "abc", ExpectReject: true}, examples[1])
	assert.Equal(t, mdexamples.Example{File: "doc.md", Line: 16, Grammar: "", Input: "-7"}, examples[2])
}

func TestExtract_IgnoresOtherBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "no blocks", doc: "just text\n"},
		{name: "other language", doc: "```python\nprint(1)\n```\n"},
		{name: "no info", doc: "```\n42\n```\n"},
		{name: "prefix only", doc: "```parsekitx int\n42\n```\n"},
		{name: "indented code", doc: "    42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, mdexamples.Extract("doc.md", []byte(tt.doc)))
		})
	}
}

func TestExtract_KeepsInnerWhitespace(t *testing.T) {
	t.Parallel()

	doc := "```parsekit int-pair\n 34 230 \r\n```\n"
	examples := mdexamples.Extract("doc.md", []byte(doc))
	require.Len(t, examples, 1)
	assert.Equal(t, " 34 230 ", examples[0].Input)
	assert.Equal(t, "int-pair", examples[0].Grammar)
}
