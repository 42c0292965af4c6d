package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/parsekit/pkg/config"
	"github.com/yaklabco/parsekit/pkg/grammar"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// FilePath is the config file containing the error (if known).
	FilePath string

	// Err describes the validation failures.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidConfig.Error())
	if e.FilePath != "" {
		b.WriteString(" (")
		b.WriteString(e.FilePath)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

// Unwrap supports errors.Is against ErrInvalidConfig and the underlying errors.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// Validate checks field values, the grammar name against registry, and the
// docs glob patterns. A nil registry skips the grammar check.
func Validate(cfg *config.Config, registry *grammar.Registry) error {
	if cfg == nil {
		return nil
	}

	var errs []error
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}

	if registry != nil && cfg.Grammar != "" {
		if _, err := registry.Lookup(cfg.Grammar); err != nil {
			errs = append(errs, fmt.Errorf("grammar: %w", err))
		}
	}

	for _, pattern := range append(append([]string(nil), cfg.Docs.Include...), cfg.Docs.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("docs: invalid glob pattern %q", pattern))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Err: errors.Join(errs...)}
}
