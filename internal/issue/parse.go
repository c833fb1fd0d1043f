// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ParseFailure records one rejected input line: either the line grammar could
// not parse it, or the record table refused the parsed record. Immutable once
// created.
type ParseFailure struct {
	// File is the input file path as given on the command line.
	File string

	// Line is the 1-based physical line number within File.
	Line int

	// Message is the grammar's or table's rejection message.
	Message string
}

// Error formats the failure as "file:line: message", the shape editors and
// humans both expect.
func (p ParseFailure) Error() string {
	var b strings.Builder
	b.WriteString(p.File)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(p.Line))
	b.WriteString(": ")
	b.WriteString(p.Message)
	return b.String()
}

// ErrorList is the aggregate of every parse failure from one compiler run,
// in discovery order (file order, then line order). Non-empty by
// construction: callers return nil instead of an empty list.
type ErrorList []ParseFailure

// Error joins every failure on its own line.
func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, p := range l {
		msgs[i] = p.Error()
	}
	return strings.Join(msgs, "\n")
}

// Files returns the distinct input files that produced failures, sorted.
func (l ErrorList) Files() []string {
	seen := make(map[string]struct{}, len(l))
	var files []string
	for _, p := range l {
		if _, ok := seen[p.File]; ok {
			continue
		}
		seen[p.File] = struct{}{}
		files = append(files, p.File)
	}
	slices.Sort(files)
	return files
}
