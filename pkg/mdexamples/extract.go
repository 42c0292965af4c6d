// Package mdexamples checks grammar examples embedded in Markdown documents.
//
// An example block is a fenced code block whose info string is
// "parsekit <grammar>". Every non-empty line of the block is one input that
// the grammar must accept in full. A line starting with "!" is an input the
// grammar must reject; the "!" itself is not part of the input.
package mdexamples

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// InfoKeyword is the first word of the info string of an example block.
const InfoKeyword = "parsekit"

// rejectPrefix marks an input the grammar must reject.
const rejectPrefix = "!"

// Example is one input taken from a Markdown example block.
type Example struct {
	// File is the document the example came from.
	File string

	// Line is the 1-based line of the input within File.
	Line int

	// Grammar is the grammar named in the info string. Empty when the
	// block names none.
	Grammar string

	// Input is the text to parse.
	Input string

	// ExpectReject is true for inputs written with a leading "!".
	ExpectReject bool
}

// Extract returns the examples found in a Markdown document, in document order.
func Extract(path string, content []byte) []Example {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	var examples []Example

	//nolint:errcheck // The walker never returns an error.
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		grammarName, ok := exampleGrammar(block, content)
		if !ok {
			return ast.WalkSkipChildren, nil
		}

		lines := block.Lines()
		for idx := range lines.Len() {
			segment := lines.At(idx)
			raw := strings.TrimRight(string(segment.Value(content)), "\r\n")
			if raw == "" {
				continue
			}

			example := Example{
				File:    path,
				Line:    lineNumber(content, segment.Start),
				Grammar: grammarName,
				Input:   raw,
			}
			if rest, found := strings.CutPrefix(raw, rejectPrefix); found {
				example.Input = rest
				example.ExpectReject = true
			}
			examples = append(examples, example)
		}

		return ast.WalkSkipChildren, nil
	})

	return examples
}

// exampleGrammar reports whether block is an example block and which
// grammar it names.
func exampleGrammar(block *ast.FencedCodeBlock, content []byte) (string, bool) {
	if block.Info == nil {
		return "", false
	}

	fields := strings.Fields(string(block.Info.Value(content)))
	if len(fields) == 0 || fields[0] != InfoKeyword {
		return "", false
	}
	if len(fields) == 1 {
		return "", true
	}
	return fields[1], true
}

// lineNumber converts a byte offset into a 1-based line number.
func lineNumber(content []byte, offset int) int {
	return bytes.Count(content[:offset], []byte{'\n'}) + 1
}
