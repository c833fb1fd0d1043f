// SPDX-License-Identifier: MPL-2.0

package tztable

import (
	"fmt"

	"tzgen-cli/internal/tzparse"
)

// Builder accumulates records for one compiler run. The zero value is not
// usable; call NewBuilder.
type Builder struct {
	rules map[string][]tzparse.Rule
	zones map[string][]tzparse.ZoneInfo
	links map[string]string

	// open is the zone whose span list the next continuation line extends.
	// Empty when the previous zone is complete (its last span had no UNTIL)
	// or when a non-continuation record intervened.
	open string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		rules: make(map[string][]tzparse.Rule),
		zones: make(map[string][]tzparse.ZoneInfo),
		links: make(map[string]string),
	}
}

// Add submits one parsed record. The returned error is a rejection message
// suitable for reporting against the record's source line.
func (b *Builder) Add(rec tzparse.Record) error {
	switch r := rec.(type) {
	case tzparse.Rule:
		return b.addRule(r)
	case tzparse.Zone:
		return b.addZone(r)
	case tzparse.ZoneContinuation:
		return b.addContinuation(r)
	case tzparse.Link:
		return b.addLink(r)
	default:
		return fmt.Errorf("unsupported record type %T", rec)
	}
}

func (b *Builder) addRule(r tzparse.Rule) error {
	b.rules[r.Name] = append(b.rules[r.Name], r)
	b.open = ""
	return nil
}

func (b *Builder) addZone(z tzparse.Zone) error {
	if _, ok := b.zones[z.Name]; ok {
		return fmt.Errorf("duplicate zone name %q", z.Name)
	}
	if _, ok := b.links[z.Name]; ok {
		return fmt.Errorf("zone name %q already used by a link", z.Name)
	}

	b.zones[z.Name] = []tzparse.ZoneInfo{z.Info}
	if z.Info.Until != nil {
		b.open = z.Name
	} else {
		b.open = ""
	}
	return nil
}

func (b *Builder) addContinuation(c tzparse.ZoneContinuation) error {
	if b.open == "" {
		return fmt.Errorf("continuation line with no preceding zone line")
	}

	b.zones[b.open] = append(b.zones[b.open], c.Info)
	if c.Info.Until == nil {
		b.open = ""
	}
	return nil
}

func (b *Builder) addLink(l tzparse.Link) error {
	if _, ok := b.links[l.Name]; ok {
		return fmt.Errorf("duplicate link name %q", l.Name)
	}
	if _, ok := b.zones[l.Name]; ok {
		return fmt.Errorf("link name %q already used by a zone", l.Name)
	}

	b.links[l.Name] = l.Target
	b.open = ""
	return nil
}

// Finalize validates cross-record references and freezes the accumulated
// records into an immutable Table. The Builder must not be used afterwards.
func (b *Builder) Finalize() (*Table, error) {
	for name, spans := range b.zones {
		for _, span := range spans {
			if span.Saving.Kind != tzparse.SavingRules {
				continue
			}
			if _, ok := b.rules[span.Saving.Rules]; !ok {
				return nil, fmt.Errorf("zone %q refers to undefined rule %q", name, span.Saving.Rules)
			}
		}
	}

	for name := range b.links {
		if _, ok := b.resolve(name); !ok {
			return nil, fmt.Errorf("link %q does not resolve to a zone", name)
		}
	}

	t := &Table{rules: b.rules, zones: b.zones, links: b.links}
	b.rules, b.zones, b.links = nil, nil, nil
	return t, nil
}

// resolve follows links until a zone is reached. Reports false on unknown
// names and link cycles.
func (b *Builder) resolve(name string) (string, bool) {
	seen := make(map[string]struct{})
	for {
		if _, ok := b.zones[name]; ok {
			return name, true
		}
		if _, ok := seen[name]; ok {
			return "", false
		}
		seen[name] = struct{}{}

		target, ok := b.links[name]
		if !ok {
			return "", false
		}
		name = target
	}
}
