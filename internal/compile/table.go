// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"tzgen-cli/internal/tztable"
)

// Table is the read-only capability the compiler consumes. Any conforming
// record table can back it; the rest of this package never sees the parser
// or the builder.
type Table interface {
	// Structure returns the namespace directories, sorted by path, children
	// sorted by name.
	Structure() []tztable.Entry

	// ZoneNames returns the directly-defined zone names, sorted.
	ZoneNames() []string

	// AliasNames returns the link alias names, sorted and disjoint from
	// ZoneNames.
	AliasNames() []string

	// TransitionHistory resolves a zone or alias name to its history;
	// false for unknown names.
	TransitionHistory(name string) (*tztable.Zoneset, bool)
}
