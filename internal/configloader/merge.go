package configloader

import (
	"github.com/yaklabco/parsekit/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - AllowRemaining can only be switched on by an override, since false is
//     indistinguishable from unset
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Grammar != "" {
		result.Grammar = override.Grammar
	}
	if override.Whitespace != "" {
		result.Whitespace = override.Whitespace
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.AllowRemaining {
		result.AllowRemaining = true
	}

	if override.Docs.Include != nil {
		result.Docs.Include = override.Docs.Include
	}
	if override.Docs.Exclude != nil {
		result.Docs.Exclude = override.Docs.Exclude
	}

	return result
}
