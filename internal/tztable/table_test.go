// SPDX-License-Identifier: MPL-2.0

package tztable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildTable finalizes the given source lines into a Table.
func buildTable(t *testing.T, lines ...string) *Table {
	t.Helper()
	b := NewBuilder()
	for _, line := range lines {
		mustAdd(t, b, line)
	}
	table, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	return table
}

func TestTable_Names(t *testing.T) {
	table := buildTable(t,
		"Zone UTC 0 - UTC",
		"Zone America/Anguilla -4:00 - AST",
		"Link America/Anguilla America/Virgin",
		"Link UTC Etc/Zulu",
	)

	if diff := cmp.Diff([]string{"America/Anguilla", "UTC"}, table.ZoneNames()); diff != "" {
		t.Errorf("ZoneNames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"America/Virgin", "Etc/Zulu"}, table.AliasNames()); diff != "" {
		t.Errorf("AliasNames mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_Structure(t *testing.T) {
	table := buildTable(t,
		"Zone UTC 0 - UTC",
		"Zone America/Anguilla -4:00 - AST",
		"Zone America/Argentina/Buenos_Aires -3:00 - ART",
		"Link America/Anguilla America/Virgin",
	)

	want := []Entry{
		{
			Name: "America",
			Children: []Child{
				TimeZone{Name: "Anguilla"},
				Submodule{Name: "Argentina"},
				TimeZone{Name: "Virgin"},
			},
		},
		{
			Name: "America/Argentina",
			Children: []Child{
				TimeZone{Name: "Buenos_Aires"},
			},
		},
	}

	if diff := cmp.Diff(want, table.Structure()); diff != "" {
		t.Errorf("Structure mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_StructureRestartable(t *testing.T) {
	table := buildTable(t, "Zone America/Anguilla -4:00 - AST")

	first := table.Structure()
	second := table.Structure()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Structure not stable across calls (-first +second):\n%s", diff)
	}
}

func TestTable_TransitionHistoryUnknown(t *testing.T) {
	table := buildTable(t, "Zone UTC 0 - UTC")

	if set, ok := table.TransitionHistory("No/Such/Zone"); ok || set != nil {
		t.Errorf("TransitionHistory(unknown) = %v, %v; want nil, false", set, ok)
	}
}
