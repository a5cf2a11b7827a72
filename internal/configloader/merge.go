package configloader

import "github.com/yaklabco/prosechunk/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
//
// File layers do not pass through here; they are decoded key by key onto the
// accumulated config so that `dev_comments: false` in a file is honored.
// merge only sees the CLI layer, where false-valued flags are applied
// separately by the command using flag change detection.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Lang != "" {
		result.Lang = override.Lang
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans: false is the zero value, so only true can be detected here.
	if override.Plain {
		result.Plain = override.Plain
	}
	if override.SkipReadme {
		result.SkipReadme = override.SkipReadme
	}
	if override.FailOnEmpty {
		result.FailOnEmpty = override.FailOnEmpty
	}

	// Slices: override replaces base entirely if non-nil
	if override.SearchDirs != nil {
		result.SearchDirs = override.SearchDirs
	}
	if override.ExtraDictionaries != nil {
		result.ExtraDictionaries = override.ExtraDictionaries
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
