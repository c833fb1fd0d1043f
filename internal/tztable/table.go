// SPDX-License-Identifier: MPL-2.0

package tztable

import (
	"sort"
	"strings"

	"tzgen-cli/internal/tzparse"
)

type (
	// Table is the finalized, read-only record set for one compiler run.
	Table struct {
		rules map[string][]tzparse.Rule
		zones map[string][]tzparse.ZoneInfo
		links map[string]string
	}

	// Entry is one directory of the zone-name namespace: its full
	// slash-delimited path and its immediate children.
	Entry struct {
		Name     string
		Children []Child
	}

	// Child is one member of a namespace directory, either a TimeZone leaf
	// or a nested Submodule directory. Consumers type-switch over exactly
	// these two arms.
	Child interface {
		childName() string
	}

	// TimeZone is a zone or alias leaf; Name is the final path segment only.
	TimeZone struct {
		Name string
	}

	// Submodule is a nested directory; Name is the single path segment.
	Submodule struct {
		Name string
	}
)

func (c TimeZone) childName() string  { return c.Name }
func (c Submodule) childName() string { return c.Name }

// ZoneNames returns the directly-defined zone names, sorted.
func (t *Table) ZoneNames() []string {
	names := make([]string, 0, len(t.zones))
	for name := range t.zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AliasNames returns the link alias names, sorted. Disjoint from ZoneNames
// by construction.
func (t *Table) AliasNames() []string {
	names := make([]string, 0, len(t.links))
	for name := range t.links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Structure returns the namespace directories implied by every zone and
// alias name, sorted by path, each with its children sorted by name.
// Separator-free names produce no entries; they belong to the root.
func (t *Table) Structure() []Entry {
	type childKey struct {
		name string
		sub  bool
	}
	dirs := make(map[string]map[childKey]Child)

	addChild := func(dir string, c Child, sub bool) {
		children, ok := dirs[dir]
		if !ok {
			children = make(map[childKey]Child)
			dirs[dir] = children
		}
		children[childKey{c.childName(), sub}] = c
	}

	for _, name := range t.names() {
		segs := strings.Split(name, "/")
		for i := 1; i < len(segs); i++ {
			dir := strings.Join(segs[:i], "/")
			if i == len(segs)-1 {
				addChild(dir, TimeZone{Name: segs[i]}, false)
			} else {
				addChild(dir, Submodule{Name: segs[i]}, true)
			}
		}
	}

	entries := make([]Entry, 0, len(dirs))
	for dir, children := range dirs {
		entry := Entry{Name: dir, Children: make([]Child, 0, len(children))}
		for _, c := range children {
			entry.Children = append(entry.Children, c)
		}
		sort.Slice(entry.Children, func(i, j int) bool {
			return entry.Children[i].childName() < entry.Children[j].childName()
		})
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// names returns the union of zone and alias names, sorted.
func (t *Table) names() []string {
	names := make([]string, 0, len(t.zones)+len(t.links))
	for name := range t.zones {
		names = append(names, name)
	}
	for name := range t.links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve follows links until a zone is reached. Reports false on unknown
// names; cycles cannot occur in a finalized table.
func (t *Table) resolve(name string) (string, bool) {
	seen := make(map[string]struct{})
	for {
		if _, ok := t.zones[name]; ok {
			return name, true
		}
		if _, ok := seen[name]; ok {
			return "", false
		}
		seen[name] = struct{}{}

		target, ok := t.links[name]
		if !ok {
			return "", false
		}
		name = target
	}
}
