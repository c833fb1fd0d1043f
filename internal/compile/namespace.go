// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"tzgen-cli/internal/issue"
	"tzgen-cli/internal/tztable"
)

// indexFile is the per-directory unit that re-exports a directory's
// children.
const indexFile = "index.go"

// writeNamespace materializes one directory per namespace entry plus its
// index unit. Creation is idempotent; an existing directory is not an error.
func (c *Compiler) writeNamespace(base string, entries []tztable.Entry) error {
	for _, entry := range entries {
		rel := strings.Join(sanitizedSegments(entry.Name), "/")
		dir := filepath.Join(base, filepath.FromSlash(rel))

		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return issue.WrapPath(err, "create output directory", dir)
		}
		c.log.Debug("created directory", "path", dir)

		content := c.renderIndex(entry)
		target := filepath.Join(dir, indexFile)
		if err := afero.WriteFile(c.fs, target, []byte(content), 0o644); err != nil {
			return issue.WrapPath(err, "write index unit", target)
		}
	}
	return nil
}

// renderIndex produces one directory's index unit. TimeZone children become
// re-export variables over the private zone declarations in the same
// package; Submodule children become blank imports, which forces the nested
// package into any build that pulls in this one.
func (c *Compiler) renderIndex(entry tztable.Entry) string {
	segs := sanitizedSegments(entry.Name)
	pkg := segs[len(segs)-1]
	dirPath := strings.Join(segs, "/")

	var subs, zones []string
	for _, child := range entry.Children {
		switch ch := child.(type) {
		case tztable.TimeZone:
			zones = append(zones, sanitizeName(ch.Name))
		case tztable.Submodule:
			subs = append(subs, sanitizeName(ch.Name))
		}
	}

	var b strings.Builder
	b.WriteString(c.opts.Header)
	b.WriteString("\n\npackage ")
	b.WriteString(pkg)
	b.WriteString("\n")

	if len(subs) > 0 {
		b.WriteString("\nimport (\n")
		for _, sub := range subs {
			fmt.Fprintf(&b, "\t_ %q\n", c.opts.ImportPath+"/"+dirPath+"/"+sub)
		}
		b.WriteString(")\n")
	}

	if len(zones) > 0 {
		b.WriteString("\n")
		for _, zone := range zones {
			fmt.Fprintf(&b, "var %s = &%s\n", zone, zoneVar(zone))
		}
	}

	return b.String()
}
