// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"io"
	"path"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"

	"tzgen-cli/internal/issue"
	"tzgen-cli/internal/platform"
)

// DefaultTypesImportPath is the import path of the runtime types package
// generated code references.
const DefaultTypesImportPath = "tzgen-cli/tzdata"

// warningHeader heads every generated file, in the form Go tooling
// recognizes, so humans don't edit what the next run overwrites.
const warningHeader = "// Code generated by tzgen. DO NOT EDIT."

// Options configures one compiler run. Formatting constants are injected
// here rather than read from globals so tests can assert on emitted content.
type Options struct {
	// BasePath is the output directory the generated tree is rooted at.
	BasePath string

	// ImportPath is the Go import path corresponding to BasePath.
	ImportPath string

	// PackageName is the root package name. Defaults to the sanitized last
	// element of ImportPath.
	PackageName string

	// TypesImportPath is where generated code finds the runtime types.
	// Defaults to DefaultTypesImportPath.
	TypesImportPath string

	// Header is the first line of every generated file. Defaults to the
	// canonical "Code generated ... DO NOT EDIT." form.
	Header string

	// Fs is the output filesystem. Defaults to the OS filesystem.
	Fs afero.Fs

	// Logger receives progress messages. Defaults to a silent logger.
	Logger *log.Logger
}

// Compiler writes the generated tree for one finalized table. Create with
// New; a Compiler is good for any number of Run calls against the same
// table.
type Compiler struct {
	table Table
	opts  Options
	fs    afero.Fs
	log   *log.Logger
}

// New returns a Compiler over a finalized table, filling option defaults.
func New(table Table, opts Options) *Compiler {
	if opts.TypesImportPath == "" {
		opts.TypesImportPath = DefaultTypesImportPath
	}
	if opts.PackageName == "" {
		opts.PackageName = sanitizeName(path.Base(opts.ImportPath))
	}
	if opts.Header == "" {
		opts.Header = warningHeader
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Compiler{table: table, opts: opts, fs: opts.Fs, log: opts.Logger}
}

// Run emits the complete output tree. Everything is written into a staging
// directory next to BasePath and swapped into place only after the last unit
// succeeded, so a failed run leaves any previous output untouched.
func (c *Compiler) Run() error {
	staging := c.opts.BasePath + ".staging"

	if err := c.fs.RemoveAll(staging); err != nil {
		return issue.WrapPath(err, "clear staging directory", staging)
	}
	if err := c.fs.MkdirAll(staging, 0o755); err != nil {
		return issue.WrapPath(err, "create staging directory", staging)
	}

	if err := c.Emit(staging); err != nil {
		c.fs.RemoveAll(staging)
		return err
	}

	if err := c.fs.RemoveAll(c.opts.BasePath); err != nil {
		return issue.WrapPath(err, "replace output directory", c.opts.BasePath)
	}
	if err := c.fs.Rename(staging, c.opts.BasePath); err != nil {
		return issue.WrapPath(err, "move staging into place", c.opts.BasePath).
			WithSuggestion("The staging directory may still hold the full output")
	}

	c.log.Info("compiled zone data",
		"zones", len(c.table.ZoneNames()),
		"aliases", len(c.table.AliasNames()),
		"path", c.opts.BasePath)
	return nil
}

// Emit writes the output tree rooted at base without any staging or swap.
// Run is the usual entry point; Emit exists for callers that manage the
// target directory themselves.
func (c *Compiler) Emit(base string) error {
	entries := c.table.Structure()
	names := c.sortedNames()

	c.warnReservedNames(names)

	if err := c.writeNamespace(base, entries); err != nil {
		return err
	}
	if err := c.writeZonesets(base, names); err != nil {
		return err
	}
	return c.writeRootIndex(base, entries, names)
}

// sortedNames returns the union of zone and alias names in lexicographic
// order. This ordering is an observable contract of the generated index.
func (c *Compiler) sortedNames() []string {
	names := append(c.table.ZoneNames(), c.table.AliasNames()...)
	slices.Sort(names)
	return names
}

// warnReservedNames flags zone path segments that collide with Windows
// reserved filenames. The tree is still emitted; it just won't check out on
// a Windows machine.
func (c *Compiler) warnReservedNames(names []string) {
	for _, name := range names {
		for _, seg := range sanitizedSegments(name) {
			if platform.IsWindowsReservedName(seg) {
				c.log.Warn("zone path segment is a reserved filename on Windows",
					"zone", name, "segment", seg)
			}
		}
	}
}
