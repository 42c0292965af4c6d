package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input is one text to parse together with where it came from.
type Input struct {
	// Source names the origin: "arg", "stdin" or a file path.
	Source string

	// Line is the 1-based line number within Source, or the 1-based
	// argument position for command-line inputs.
	Line int

	// Text is the input itself, without the line terminator.
	Text string
}

// Location renders where the input came from, e.g. "stdin:3" or "arg 2".
func (i Input) Location() string {
	if i.Source == SourceArgs {
		return fmt.Sprintf("%s %d", SourceArgs, i.Line)
	}
	return fmt.Sprintf("%s:%d", i.Source, i.Line)
}

// SourceArgs and SourceStdin name the non-file input sources.
const (
	SourceArgs  = "arg"
	SourceStdin = "stdin"
)

// FromArgs converts command-line arguments into inputs. Every argument is
// kept, including empty ones.
func FromArgs(args []string) []Input {
	inputs := make([]Input, 0, len(args))
	for idx, arg := range args {
		inputs = append(inputs, Input{Source: SourceArgs, Line: idx + 1, Text: arg})
	}
	return inputs
}

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 30

// ReadLines reads one input per non-empty line of r. A trailing "\r" is
// stripped from each line.
func ReadLines(ctx context.Context, r io.Reader, source string) ([]Input, error) {
	var inputs []Input

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		inputs = append(inputs, Input{Source: source, Line: lineNo, Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return inputs, nil
}

// ReadFiles reads inputs from each path in order with ReadLines.
func ReadFiles(ctx context.Context, paths []string) ([]Input, error) {
	var inputs []Input
	for _, path := range paths {
		fileInputs, err := readFile(ctx, path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, fileInputs...)
	}
	return inputs, nil
}

func readFile(ctx context.Context, path string) ([]Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	return ReadLines(ctx, f, path)
}
