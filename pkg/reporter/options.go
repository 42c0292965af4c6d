package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext marks where parsing stopped under rejected inputs.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// FailuresOnly omits matched inputs from text and table output.
	FailuresOnly bool

	// Compact uses compact/minified output where applicable.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}
