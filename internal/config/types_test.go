// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	tests := []struct {
		value ColorScheme
		valid bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{"", false},
		{"sepia", false},
	}
	for _, tt := range tests {
		valid, errs := tt.value.IsValid()
		if valid != tt.valid {
			t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.value, valid, tt.valid)
		}
		if !tt.valid && !errors.Is(errs[0], ErrInvalidColorScheme) {
			t.Errorf("ColorScheme(%q) error = %v, want ErrInvalidColorScheme", tt.value, errs[0])
		}
	}
}

func TestOutputDirPathIsValid(t *testing.T) {
	tests := []struct {
		value OutputDirPath
		valid bool
	}{
		{"tzdb", true},
		{"/abs/path", true},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		valid, errs := tt.value.IsValid()
		if valid != tt.valid {
			t.Errorf("OutputDirPath(%q).IsValid() = %v, want %v", tt.value, valid, tt.valid)
		}
		if !tt.valid && !errors.Is(errs[0], ErrInvalidOutputDir) {
			t.Errorf("OutputDirPath(%q) error = %v", tt.value, errs[0])
		}
	}
}

func TestImportPathIsValid(t *testing.T) {
	tests := []struct {
		value ImportPath
		valid bool
	}{
		{"tzdb", true},
		{"example.com/generated/tzdb", true},
		{"", false},
		{"has space", false},
	}
	for _, tt := range tests {
		valid, errs := tt.value.IsValid()
		if valid != tt.valid {
			t.Errorf("ImportPath(%q).IsValid() = %v, want %v", tt.value, valid, tt.valid)
		}
		if !tt.valid && !errors.Is(errs[0], ErrInvalidImportPath) {
			t.Errorf("ImportPath(%q) error = %v", tt.value, errs[0])
		}
	}
}

func TestConfigIsValid_CollectsFieldErrors(t *testing.T) {
	cfg := Config{
		Output: OutputConfig{Dir: "", ImportPath: "bad path"},
		UI:     UIConfig{ColorScheme: "sepia"},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected invalid config")
	}
	if len(errs) != 1 {
		t.Fatalf("got %d top-level errors, want 1", len(errs))
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Errorf("DefaultConfig invalid: %v", errs)
	}
}
