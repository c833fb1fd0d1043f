// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"

	"tzgen-cli/internal/issue"
	"tzgen-cli/internal/tzparse"
	"tzgen-cli/internal/tztable"
)

// Load reads every input file in order and builds the record table. Each
// physical line is stripped of its trailing # comment and, if anything
// remains, handed to the line grammar; grammar failures and table rejections
// are aggregated per (file, 1-based line) instead of aborting.
//
// If any line was rejected, Load returns an issue.ErrorList and no table. An
// unreadable file is fatal immediately and returns an
// *issue.ActionableError.
func Load(fsys afero.Fs, paths []string) (*tztable.Table, error) {
	builder := tztable.NewBuilder()
	var failures issue.ErrorList

	for _, path := range paths {
		fileFailures, err := loadFile(fsys, path, builder)
		if err != nil {
			return nil, err
		}
		failures = append(failures, fileFailures...)
	}

	if len(failures) > 0 {
		return nil, failures
	}

	table, err := builder.Finalize()
	if err != nil {
		return nil, issue.WrapOp(err, "finalize record table")
	}
	return table, nil
}

func loadFile(fsys afero.Fs, path string, builder *tztable.Builder) (issue.ErrorList, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, issue.WrapPath(err, "open input file", path).
			WithSuggestion("Check that the path is spelled correctly and readable")
	}
	defer f.Close()

	var failures issue.ErrorList

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		rec, err := tzparse.ParseLine(line)
		if err != nil {
			failures = append(failures, issue.ParseFailure{File: path, Line: lineNo, Message: err.Error()})
			continue
		}
		if rec == nil {
			continue
		}

		if err := builder.Add(rec); err != nil {
			failures = append(failures, issue.ParseFailure{File: path, Line: lineNo, Message: err.Error()})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, issue.WrapPath(err, "read input file", path)
	}

	return failures, nil
}
