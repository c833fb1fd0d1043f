// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputDir is returned when an OutputDirPath value is whitespace-only.
	ErrInvalidOutputDir = errors.New("invalid output directory")
	// ErrInvalidImportPath is the sentinel error wrapped by InvalidImportPathError.
	ErrInvalidImportPath = errors.New("invalid import path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputDirPath is the filesystem path the compiled tree is written under.
	// A valid path must be non-empty and not whitespace-only.
	OutputDirPath string

	// InvalidOutputDirError is returned when an OutputDirPath value is empty
	// or whitespace-only. It wraps ErrInvalidOutputDir for errors.Is().
	InvalidOutputDirError struct {
		Value OutputDirPath
	}

	// ImportPath is the Go import path the generated packages live under. A
	// valid path must be non-empty and contain no whitespace.
	ImportPath string

	// InvalidImportPathError is returned when an ImportPath value is empty or
	// contains whitespace. It wraps ErrInvalidImportPath for errors.Is().
	InvalidImportPathError struct {
		Value ImportPath
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// OutputConfig describes where and under which import path the compiled
	// tree is emitted.
	OutputConfig struct {
		// Dir is the directory the compiled tree is written under.
		Dir OutputDirPath `toml:"dir" mapstructure:"dir"`
		// ImportPath is the import path of the generated root package.
		ImportPath ImportPath `toml:"import_path" mapstructure:"import_path"`
		// TypesImportPath overrides the import path of the runtime types
		// package referenced by every generated unit. Empty means the
		// built-in default.
		TypesImportPath string `toml:"types_import_path,omitempty" mapstructure:"types_import_path"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `toml:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}

	// Config holds the application configuration.
	Config struct {
		// Output configures the emitted tree.
		Output OutputConfig `toml:"output" mapstructure:"output"`
		// UI configures the user interface
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the OutputDirPath.
func (p OutputDirPath) String() string { return string(p) }

// IsValid returns whether the OutputDirPath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p OutputDirPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidOutputDirError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputDirError.
func (e *InvalidOutputDirError) Error() string {
	return fmt.Sprintf("invalid output directory %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidOutputDir for errors.Is() compatibility.
func (e *InvalidOutputDirError) Unwrap() error { return ErrInvalidOutputDir }

// String returns the string representation of the ImportPath.
func (p ImportPath) String() string { return string(p) }

// IsValid returns whether the ImportPath is valid.
// A valid path must be non-empty and contain no whitespace.
func (p ImportPath) IsValid() (bool, []error) {
	if p == "" || strings.ContainsAny(string(p), " \t") {
		return false, []error{&InvalidImportPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidImportPathError.
func (e *InvalidImportPathError) Error() string {
	return fmt.Sprintf("invalid import path %q: must be non-empty and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidImportPath for errors.Is() compatibility.
func (e *InvalidImportPathError) Unwrap() error { return ErrInvalidImportPath }

// IsValid returns whether the Config has valid fields.
// It delegates to Output.Dir.IsValid(), Output.ImportPath.IsValid(), and
// UI.ColorScheme.IsValid(); bool fields need no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Output.Dir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.ImportPath.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:             "tzdb",
			ImportPath:      "tzdb",
			TypesImportPath: "", // Will use the built-in types package if empty
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
