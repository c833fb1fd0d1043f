// SPDX-License-Identifier: MPL-2.0

package tzparse

import (
	"testing"
	"time"
)

func TestParseLine_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\t"} {
		rec, err := ParseLine(line)
		if err != nil {
			t.Errorf("ParseLine(%q) error: %v", line, err)
		}
		if rec != nil {
			t.Errorf("ParseLine(%q) = %v, want nil", line, rec)
		}
	}
}

func TestParseLine_Rule(t *testing.T) {
	rec, err := ParseLine("Rule\tEU\t1981\tmax\t-\tMar\tlastSun\t 1:00u\t1:00\tS")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	rule, ok := rec.(Rule)
	if !ok {
		t.Fatalf("expected Rule, got %T", rec)
	}

	if rule.Name != "EU" {
		t.Errorf("Name = %q, want EU", rule.Name)
	}
	if rule.From != (Year{Kind: YearNumber, Number: 1981}) {
		t.Errorf("From = %+v", rule.From)
	}
	if rule.To.Kind != YearMaximum {
		t.Errorf("To = %+v, want maximum", rule.To)
	}
	if rule.In != time.March {
		t.Errorf("In = %v, want March", rule.In)
	}
	if rule.On != (DaySpec{Kind: DayLast, Weekday: time.Sunday}) {
		t.Errorf("On = %+v", rule.On)
	}
	if rule.At != (TimeSpec{Seconds: 3600, Form: Universal}) {
		t.Errorf("At = %+v", rule.At)
	}
	if rule.Save != 3600 {
		t.Errorf("Save = %d, want 3600", rule.Save)
	}
	if rule.Letters != "S" {
		t.Errorf("Letters = %q, want S", rule.Letters)
	}
}

func TestParseLine_RuleDashLetters(t *testing.T) {
	rec, err := ParseLine("Rule EU 1996 max - Oct lastSun 1:00u 0 -")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	rule := rec.(Rule)
	if rule.Letters != "" {
		t.Errorf("Letters = %q, want empty", rule.Letters)
	}
	if rule.Save != 0 {
		t.Errorf("Save = %d, want 0", rule.Save)
	}
}

func TestParseLine_Zone(t *testing.T) {
	rec, err := ParseLine("Zone\tEurope/Vienna\t1:05:21 -\tLMT\t1893 Apr")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	zone, ok := rec.(Zone)
	if !ok {
		t.Fatalf("expected Zone, got %T", rec)
	}

	if zone.Name != "Europe/Vienna" {
		t.Errorf("Name = %q", zone.Name)
	}
	if zone.Info.StdOffset != 1*3600+5*60+21 {
		t.Errorf("StdOffset = %d", zone.Info.StdOffset)
	}
	if zone.Info.Saving.Kind != SavingNone {
		t.Errorf("Saving = %+v, want none", zone.Info.Saving)
	}
	if zone.Info.Format != "LMT" {
		t.Errorf("Format = %q", zone.Info.Format)
	}
	if zone.Info.Until == nil {
		t.Fatal("Until = nil, want 1893 Apr")
	}
	if zone.Info.Until.Year != 1893 || zone.Info.Until.Month != time.April {
		t.Errorf("Until = %+v", zone.Info.Until)
	}
	if zone.Info.Until.Day.Day != 1 {
		t.Errorf("Until day = %+v, want default 1", zone.Info.Until.Day)
	}
}

func TestParseLine_ZoneNoUntil(t *testing.T) {
	rec, err := ParseLine("Zone Test/Zone-A 1:00 - FOO")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	zone := rec.(Zone)
	if zone.Name != "Test/Zone-A" {
		t.Errorf("Name = %q", zone.Name)
	}
	if zone.Info.StdOffset != 3600 {
		t.Errorf("StdOffset = %d, want 3600", zone.Info.StdOffset)
	}
	if zone.Info.Until != nil {
		t.Errorf("Until = %+v, want nil", zone.Info.Until)
	}
}

func TestParseLine_Continuation(t *testing.T) {
	rec, err := ParseLine("\t\t\t1:00\tEU\tCE%sT")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	cont, ok := rec.(ZoneContinuation)
	if !ok {
		t.Fatalf("expected ZoneContinuation, got %T", rec)
	}
	if cont.Info.Saving != (Saving{Kind: SavingRules, Rules: "EU"}) {
		t.Errorf("Saving = %+v", cont.Info.Saving)
	}
	if cont.Info.Format != "CE%sT" {
		t.Errorf("Format = %q", cont.Info.Format)
	}
}

func TestParseLine_ContinuationFixedSaving(t *testing.T) {
	rec, err := ParseLine("  2:00 1:00 EEST 1945")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	cont := rec.(ZoneContinuation)
	if cont.Info.Saving != (Saving{Kind: SavingFixed, Save: 3600}) {
		t.Errorf("Saving = %+v", cont.Info.Saving)
	}
}

func TestParseLine_Link(t *testing.T) {
	rec, err := ParseLine("Link\tEurope/Vienna\tArctic/Longyearbyen")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	link, ok := rec.(Link)
	if !ok {
		t.Fatalf("expected Link, got %T", rec)
	}
	if link.Target != "Europe/Vienna" || link.Name != "Arctic/Longyearbyen" {
		t.Errorf("Link = %+v", link)
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown record", "Bogus A B C"},
		{"rule too short", "Rule EU 1981 max - Mar lastSun 1:00u"},
		{"rule bad month", "Rule EU 1981 max - Janx lastSun 1:00u 1:00 S"},
		{"rule ambiguous month", "Rule EU 1981 max - Ma lastSun 1:00u 1:00 S"},
		{"rule bad type", "Rule EU 1981 max odd Mar lastSun 1:00u 1:00 S"},
		{"zone too short", "Zone Europe/Vienna 1:00"},
		{"zone bad offset", "Zone Europe/Vienna one - LMT"},
		{"link extra field", "Link A B C"},
		{"until non-numeric year", "Zone A 1:00 - X max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLine(tt.line); err == nil {
				t.Errorf("ParseLine(%q) succeeded, want error", tt.line)
			}
		})
	}
}
