// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"tzgen-cli/internal/issue"
	"tzgen-cli/internal/tztable"
)

// writeZonesets emits one compiled unit per zone and alias name. Work is
// sharded by top-level namespace segment; each shard's subtree is
// independent of every other's, so the shards run concurrently.
func (c *Compiler) writeZonesets(base string, names []string) error {
	shards := make(map[string][]string)
	var order []string
	for _, name := range names {
		top, _, _ := strings.Cut(name, "/")
		if _, ok := shards[top]; !ok {
			order = append(order, top)
		}
		shards[top] = append(shards[top], name)
	}

	var g errgroup.Group
	for _, top := range order {
		shard := shards[top]
		g.Go(func() error {
			for _, name := range shard {
				if err := c.writeZoneset(base, name); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// writeZoneset emits the compiled unit for one name at the sanitized,
// separator-split path under base.
func (c *Compiler) writeZoneset(base, name string) error {
	set, ok := c.table.TransitionHistory(name)
	if !ok {
		return issue.WrapPath(fmt.Errorf("no transition history"), "encode zone", name)
	}

	segs := sanitizedSegments(name)
	target := filepath.Join(base, filepath.FromSlash(strings.Join(segs, "/"))) + ".go"

	content := c.renderZoneset(name, set)
	if err := afero.WriteFile(c.fs, target, []byte(content), 0o644); err != nil {
		return issue.WrapPath(err, "write zone file", target)
	}
	c.log.Debug("wrote zone file", "name", name, "path", target)
	return nil
}

// renderZoneset produces one compiled unit. The zone's original name is
// embedded as data; only total offsets become runtime fields, with the
// UTC/DST split and the calendar form of each instant preserved as comments
// for auditing.
func (c *Compiler) renderZoneset(name string, set *tztable.Zoneset) string {
	segs := sanitizedSegments(name)
	pkg := c.opts.PackageName
	if len(segs) > 1 {
		pkg = segs[len(segs)-2]
	}
	tp := c.typesPackage()

	var b strings.Builder
	b.WriteString(c.opts.Header)
	b.WriteString("\n\npackage ")
	b.WriteString(pkg)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "import %q\n\n", c.opts.TypesImportPath)

	fmt.Fprintf(&b, "var %s = %s.Zone{\n", zoneVar(segs[len(segs)-1]), tp)
	fmt.Fprintf(&b, "\tName: %q,\n", name)
	fmt.Fprintf(&b, "\tTimespans: %s.FixedTimespanSet{\n", tp)

	fmt.Fprintf(&b, "\t\tFirst: %s.FixedTimespan{\n", tp)
	fmt.Fprintf(&b, "\t\t\tOffset: %d, // UTC offset %d, DST offset %d\n",
		set.First.TotalOffset(), set.First.UTCOffset, set.First.DSTOffset)
	fmt.Fprintf(&b, "\t\t\tIsDST:  %t,\n", set.First.IsDST())
	fmt.Fprintf(&b, "\t\t\tAbbrev: %q,\n", set.First.Abbrev)
	b.WriteString("\t\t},\n")

	if len(set.Rest) > 0 {
		fmt.Fprintf(&b, "\t\tRest: []%s.Transition{\n", tp)
		for _, tr := range set.Rest {
			ts := tr.Timespan
			fmt.Fprintf(&b,
				"\t\t\t{When: %d, Timespan: %s.FixedTimespan{Offset: %d, IsDST: %t, Abbrev: %q}}, // %s; UTC offset %d, DST offset %d\n",
				tr.When, tp, ts.TotalOffset(), ts.IsDST(), ts.Abbrev,
				isoUTC(tr.When), ts.UTCOffset, ts.DSTOffset)
		}
		b.WriteString("\t\t},\n")
	}

	b.WriteString("\t},\n}\n")
	return b.String()
}
