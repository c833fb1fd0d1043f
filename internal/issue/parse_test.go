// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestParseFailure_Error(t *testing.T) {
	tests := []struct {
		name     string
		failure  ParseFailure
		expected string
	}{
		{
			name:     "simple",
			failure:  ParseFailure{File: "europe", Line: 3, Message: "invalid month \"Janx\""},
			expected: "europe:3: invalid month \"Janx\"",
		},
		{
			name:     "path with directories",
			failure:  ParseFailure{File: "tz/northamerica", Line: 1204, Message: "surprising continuation line"},
			expected: "tz/northamerica:1204: surprising continuation line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.failure.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorList_Error(t *testing.T) {
	list := ErrorList{
		{File: "a", Line: 1, Message: "one"},
		{File: "b", Line: 2, Message: "two"},
	}

	got := list.Error()
	want := "a:1: one\nb:2: two"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorList_Files(t *testing.T) {
	list := ErrorList{
		{File: "southamerica", Line: 9, Message: "x"},
		{File: "africa", Line: 2, Message: "y"},
		{File: "southamerica", Line: 14, Message: "z"},
	}

	files := list.Files()
	if len(files) != 2 {
		t.Fatalf("expected 2 distinct files, got %v", files)
	}
	if files[0] != "africa" || files[1] != "southamerica" {
		t.Errorf("expected sorted distinct files, got %v", files)
	}
}

func TestActionableError_Error(t *testing.T) {
	err := WrapPath(errNotExist{}, "open input file", "tz/europe")
	if !strings.Contains(err.Error(), "failed to open input file: tz/europe") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestActionableError_FormatVerbose(t *testing.T) {
	err := WrapPath(errNotExist{}, "create output directory", "out/America").
		WithSuggestion("Check permissions on the output path")

	got := err.Format(true)
	if !strings.Contains(got, "hint: Check permissions") {
		t.Errorf("verbose format missing suggestion: %q", got)
	}
	if !strings.Contains(got, "caused by: no such file") {
		t.Errorf("verbose format missing cause: %q", got)
	}
}

func TestWrapOp_NilPassthrough(t *testing.T) {
	if err := WrapOp(nil, "anything"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

type errNotExist struct{}

func (errNotExist) Error() string { return "no such file" }
