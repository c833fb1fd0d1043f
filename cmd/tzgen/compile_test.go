// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// setCompileFlags sets the compile command's package-level flag vars and
// restores them on cleanup. Not parallel-safe.
func setCompileFlags(t *testing.T, out, ip string) {
	t.Helper()
	origOut, origIP, origTIP := outDir, importPath, typesImportPath
	t.Cleanup(func() {
		outDir, importPath, typesImportPath = origOut, origIP, origTIP
	})
	outDir, importPath = out, ip
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunCompile_GeneratesTree(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "europe", `
Zone Europe/Lisbon 0:00 - WET
Link Europe/Lisbon Portugal
`)
	out := filepath.Join(dir, "tzdb")
	setCompileFlags(t, out, "example.com/tzdb")

	if err := runCompile(compileCmd, []string{input}); err != nil {
		t.Fatalf("runCompile error: %v", err)
	}

	for _, rel := range []string{
		"index.go",
		filepath.Join("Europe", "index.go"),
		filepath.Join("Europe", "Lisbon.go"),
		"Portugal.go",
	} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
}

func TestRunCompile_ParseFailuresExitNonzero(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "broken", "Zone Europe/Lisbon\n")
	out := filepath.Join(dir, "tzdb")
	setCompileFlags(t, out, "example.com/tzdb")

	err := runCompile(compileCmd, []string{input})
	if err == nil {
		t.Fatal("expected error for malformed input")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 1 {
		t.Errorf("Code = %d, want 1", exitErr.Code)
	}

	// Nothing may be written when parsing fails.
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output directory created despite failure: %v", err)
	}
}

func TestRunCompile_MissingInputExitNonzero(t *testing.T) {
	dir := t.TempDir()
	setCompileFlags(t, filepath.Join(dir, "tzdb"), "example.com/tzdb")

	err := runCompile(compileCmd, []string{filepath.Join(dir, "absent")})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T", err)
	}
}
