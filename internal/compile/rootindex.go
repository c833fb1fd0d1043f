// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/slices"

	"tzgen-cli/internal/issue"
	"tzgen-cli/internal/tztable"
)

// writeRootIndex emits the root index unit: re-exports of every top-level
// name, the full name→zone map, and the Lookup entry point. It must run
// after every zoneset shard has completed since the map spans the whole
// sorted name set.
func (c *Compiler) writeRootIndex(base string, entries []tztable.Entry, names []string) error {
	content := c.renderRootIndex(entries, names)
	target := filepath.Join(base, indexFile)
	if err := afero.WriteFile(c.fs, target, []byte(content), 0o644); err != nil {
		return issue.WrapPath(err, "write root index", target)
	}
	c.log.Debug("wrote root index", "path", target, "names", len(names))
	return nil
}

func (c *Compiler) renderRootIndex(entries []tztable.Entry, names []string) string {
	tp := c.typesPackage()

	// Directories referenced by the map, i.e. parents of nested names.
	var usedDirs []string
	seen := make(map[string]struct{})
	for _, name := range names {
		dir := dirOf(name)
		if dir == "" {
			continue
		}
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			usedDirs = append(usedDirs, dir)
		}
	}
	slices.Sort(usedDirs)

	// Top-level directories with no direct zones still need to be part of
	// the build; a blank import plays the role a nested-namespace re-export
	// would.
	var blankDirs []string
	for _, entry := range entries {
		if strings.Contains(entry.Name, "/") {
			continue
		}
		dir := sanitizeName(entry.Name)
		if _, ok := seen[dir]; !ok {
			blankDirs = append(blankDirs, dir)
		}
	}

	var b strings.Builder
	b.WriteString(c.opts.Header)
	b.WriteString("\n\npackage ")
	b.WriteString(c.opts.PackageName)
	b.WriteString("\n\nimport (\n")
	fmt.Fprintf(&b, "\t%q\n", c.opts.TypesImportPath)
	if len(usedDirs) > 0 || len(blankDirs) > 0 {
		b.WriteString("\n")
	}
	for _, dir := range usedDirs {
		fmt.Fprintf(&b, "\t%s %q\n", dirAlias(dir), c.opts.ImportPath+"/"+dir)
	}
	for _, dir := range blankDirs {
		fmt.Fprintf(&b, "\t_ %q\n", c.opts.ImportPath+"/"+dir)
	}
	b.WriteString(")\n")

	var topLevel []string
	for _, name := range names {
		if !strings.Contains(name, "/") {
			topLevel = append(topLevel, sanitizeName(name))
		}
	}
	if len(topLevel) > 0 {
		b.WriteString("\n")
		for _, leaf := range topLevel {
			fmt.Fprintf(&b, "var %s = &%s\n", leaf, zoneVar(leaf))
		}
	}

	fmt.Fprintf(&b, "\nvar zones = map[string]*%s.Zone{\n", tp)
	for _, name := range names {
		segs := sanitizedSegments(name)
		if len(segs) == 1 {
			fmt.Fprintf(&b, "\t%q: %s,\n", name, segs[0])
			continue
		}
		alias := dirAlias(strings.Join(segs[:len(segs)-1], "/"))
		fmt.Fprintf(&b, "\t%q: %s.%s,\n", name, alias, segs[len(segs)-1])
	}
	b.WriteString("}\n")

	fmt.Fprintf(&b, "\n// Lookup resolves an IANA zone or alias name; ok is false for unknown\n")
	fmt.Fprintf(&b, "// names.\nfunc Lookup(name string) (z *%s.Zone, ok bool) {\n", tp)
	b.WriteString("\tz, ok = zones[name]\n\treturn z, ok\n}\n")

	return b.String()
}
