// SPDX-License-Identifier: MPL-2.0

package tztable

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func utcInstant(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix()
}

func TestTimespan_Derived(t *testing.T) {
	ts := Timespan{UTCOffset: 3600, DSTOffset: 1800, Abbrev: "X"}
	if ts.TotalOffset() != 5400 {
		t.Errorf("TotalOffset = %d, want 5400", ts.TotalOffset())
	}
	if !ts.IsDST() {
		t.Error("IsDST = false, want true")
	}

	std := Timespan{UTCOffset: -14400, Abbrev: "AST"}
	if std.TotalOffset() != -14400 || std.IsDST() {
		t.Errorf("standard timespan derived values wrong: %+v", std)
	}
}

func TestTransitionHistory_FixedOffset(t *testing.T) {
	table := buildTable(t, "Zone Test/Zone-A 1:00 - FOO")

	set, ok := table.TransitionHistory("Test/Zone-A")
	if !ok {
		t.Fatal("TransitionHistory returned false")
	}

	want := &Zoneset{
		First: Timespan{UTCOffset: 3600, Abbrev: "FOO"},
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestTransitionHistory_ThroughLink(t *testing.T) {
	table := buildTable(t,
		"Zone Test/Zone-A 1:00 - FOO",
		"Link Test/Zone-A Test/Alias",
	)

	direct, _ := table.TransitionHistory("Test/Zone-A")
	viaLink, ok := table.TransitionHistory("Test/Alias")
	if !ok {
		t.Fatal("alias did not resolve")
	}
	if diff := cmp.Diff(direct, viaLink); diff != "" {
		t.Errorf("alias history differs from zone history (-zone +alias):\n%s", diff)
	}
}

func TestTransitionHistory_UntilSpans(t *testing.T) {
	table := buildTable(t,
		"Zone Test/B 1:00 - ONE 1980",
		"\t2:00\t-\tTWO",
	)

	set, ok := table.TransitionHistory("Test/B")
	if !ok {
		t.Fatal("TransitionHistory returned false")
	}

	// The span boundary is 1980-01-01 00:00 wall time at +01:00.
	want := &Zoneset{
		First: Timespan{UTCOffset: 3600, Abbrev: "ONE"},
		Rest: []Transition{
			{
				When:     utcInstant(1980, time.January, 1, 0) - 3600,
				Timespan: Timespan{UTCOffset: 7200, Abbrev: "TWO"},
			},
		},
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestTransitionHistory_FixedSaving(t *testing.T) {
	table := buildTable(t,
		"Zone Test/C 2:00 - EET 1944",
		"\t2:00\t1:00\tEEST 1945",
		"\t2:00\t-\tEET",
	)

	set, ok := table.TransitionHistory("Test/C")
	if !ok {
		t.Fatal("TransitionHistory returned false")
	}

	if len(set.Rest) != 2 {
		t.Fatalf("expected 2 transitions, got %d: %+v", len(set.Rest), set.Rest)
	}
	if !set.Rest[0].Timespan.IsDST() || set.Rest[0].Timespan.TotalOffset() != 3*3600 {
		t.Errorf("fixed-saving span wrong: %+v", set.Rest[0].Timespan)
	}
	if set.Rest[1].Timespan.IsDST() {
		t.Errorf("post-saving span wrong: %+v", set.Rest[1].Timespan)
	}
}

func TestTransitionHistory_RuleDriven(t *testing.T) {
	table := buildTable(t,
		"Rule X 1980 1981 - Mar lastSun 1:00u 1:00 S",
		"Rule X 1980 1981 - Oct lastSun 1:00u 0 -",
		"Zone Test/City 1:00 X CE%sT",
	)

	set, ok := table.TransitionHistory("Test/City")
	if !ok {
		t.Fatal("TransitionHistory returned false")
	}

	if set.First.TotalOffset() != 3600 || set.First.IsDST() || set.First.Abbrev != "CET" {
		t.Errorf("First = %+v, want standard CET at +01:00", set.First)
	}

	// Last Sundays: 1980-03-30, 1980-10-26, 1981-03-29, 1981-10-25, each at
	// 01:00 UTC.
	want := []Transition{
		{When: utcInstant(1980, time.March, 30, 1), Timespan: Timespan{UTCOffset: 3600, DSTOffset: 3600, Abbrev: "CEST"}},
		{When: utcInstant(1980, time.October, 26, 1), Timespan: Timespan{UTCOffset: 3600, Abbrev: "CET"}},
		{When: utcInstant(1981, time.March, 29, 1), Timespan: Timespan{UTCOffset: 3600, DSTOffset: 3600, Abbrev: "CEST"}},
		{When: utcInstant(1981, time.October, 25, 1), Timespan: Timespan{UTCOffset: 3600, Abbrev: "CET"}},
	}
	if diff := cmp.Diff(want, set.Rest); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestTransitionHistory_OrderedAndDistinct(t *testing.T) {
	table := buildTable(t,
		"Rule Y 1990 max - Mar lastSun 1:00u 1:00 S",
		"Rule Y 1990 max - Oct lastSun 1:00u 0 -",
		"Zone Test/D 0:00 - GMT 1990",
		"\t1:00\tY\tCE%sT",
	)

	set, ok := table.TransitionHistory("Test/D")
	if !ok {
		t.Fatal("TransitionHistory returned false")
	}
	if len(set.Rest) == 0 {
		t.Fatal("expected transitions up to the expansion horizon")
	}

	for i := 1; i < len(set.Rest); i++ {
		if set.Rest[i].When <= set.Rest[i-1].When {
			t.Fatalf("transitions not strictly increasing at %d: %d then %d",
				i, set.Rest[i-1].When, set.Rest[i].When)
		}
	}

	last := set.Rest[len(set.Rest)-1]
	if y := time.Unix(last.When, 0).UTC().Year(); y != expansionHorizon {
		t.Errorf("final transition year = %d, want %d", y, expansionHorizon)
	}
}

func TestFormatAbbrev(t *testing.T) {
	tests := []struct {
		format  string
		save    int
		letters string
		want    string
	}{
		{"CE%sT", 0, "", "CET"},
		{"CE%sT", 3600, "S", "CEST"},
		{"EET/EEST", 0, "", "EET"},
		{"EET/EEST", 3600, "", "EEST"},
		{"AST", 0, "", "AST"},
		{"+05/+06", 3600, "", "+06"},
	}

	for _, tt := range tests {
		if got := formatAbbrev(tt.format, tt.save, tt.letters); got != tt.want {
			t.Errorf("formatAbbrev(%q, %d, %q) = %q, want %q",
				tt.format, tt.save, tt.letters, got, tt.want)
		}
	}
}
