// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"path"
	"strings"
	"time"
)

// sanitizeName rewrites characters that are invalid in a Go identifier.
// The only character zone names actually contain is '-'; nothing else is
// altered, so names differing only by '-' vs '_' would collide. The IANA
// database has no such pair.
func sanitizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// sanitizedSegments splits a slash-delimited name and sanitizes each
// segment.
func sanitizedSegments(name string) []string {
	segs := strings.Split(name, "/")
	for i, s := range segs {
		segs[i] = sanitizeName(s)
	}
	return segs
}

// dirOf returns the sanitized parent directory of a name in slash form, or
// "" for a separator-free name.
func dirOf(name string) string {
	segs := sanitizedSegments(name)
	return strings.Join(segs[:len(segs)-1], "/")
}

// dirAlias is the deterministic import alias for a namespace directory:
// path segments joined by underscores.
func dirAlias(dir string) string {
	return strings.ReplaceAll(dir, "/", "_")
}

// zoneVar is the unexported variable a zoneset file declares; the index
// unit re-exports it under the bare sanitized leaf name.
func zoneVar(leaf string) string {
	return "zone" + leaf
}

// typesPackage is the package identifier generated code uses to reference
// the runtime types import.
func (c *Compiler) typesPackage() string {
	return path.Base(c.opts.TypesImportPath)
}

// isoUTC renders a transition instant in the fixed ISO-8601-like form used
// in audit comments.
func isoUTC(when int64) string {
	return time.Unix(when, 0).UTC().Format("2006-01-02T15:04:05") + " UTC"
}
