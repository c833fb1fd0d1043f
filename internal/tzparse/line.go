// SPDX-License-Identifier: MPL-2.0

package tzparse

import (
	"fmt"
	"strings"
	"time"
)

type (
	// Record is one parsed zoneinfo source record. The concrete types are
	// Rule, Zone, ZoneContinuation, and Link; consumers are expected to
	// type-switch over all four.
	Record interface {
		record()
	}

	// Rule is one "Rule" line: a named daylight-saving rule that zones refer
	// to from their RULES column.
	Rule struct {
		Name    string
		From    Year
		To      Year
		In      time.Month
		On      DaySpec
		At      TimeSpec
		Save    int // seconds
		Letters string
	}

	// Zone is a "Zone" header line: the zone name plus its first timespan.
	Zone struct {
		Name string
		Info ZoneInfo
	}

	// ZoneContinuation is an indented line extending the most recent Zone
	// with another timespan.
	ZoneContinuation struct {
		Info ZoneInfo
	}

	// Link is a "Link" line: an alias Name for an existing zone Target.
	Link struct {
		Target string
		Name   string
	}

	// ZoneInfo is the per-timespan portion shared by Zone and
	// ZoneContinuation lines: standard offset, saving behavior, abbreviation
	// format, and the optional UNTIL bound.
	ZoneInfo struct {
		StdOffset int // seconds east of UTC
		Saving    Saving
		Format    string
		Until     *Until
	}

	// Until is the moment a zone timespan stops applying. Missing columns
	// default to January, day 1, midnight wall time.
	Until struct {
		Year  int
		Month time.Month
		Day   DaySpec
		Time  TimeSpec
	}
)

func (Rule) record()             {}
func (Zone) record()             {}
func (ZoneContinuation) record() {}
func (Link) record()             {}

// Saving is the RULES column of a zone line: no saving ("-"), a fixed saving
// amount, or the name of a rule set.
type Saving struct {
	Kind  SavingKind
	Save  int    // seconds, for SavingFixed
	Rules string // rule set name, for SavingRules
}

// SavingKind discriminates the three RULES column forms.
type SavingKind int

const (
	SavingNone SavingKind = iota
	SavingFixed
	SavingRules
)

// ParseLine parses one comment-stripped physical line. It returns (nil, nil)
// for a line that is blank or whitespace-only. A line starting with
// whitespace is a zone continuation; otherwise the first field selects the
// record type.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	if line[0] == ' ' || line[0] == '\t' {
		info, err := parseZoneInfo(fields)
		if err != nil {
			return nil, err
		}
		return ZoneContinuation{Info: info}, nil
	}

	switch fields[0] {
	case "Rule":
		return parseRule(fields)
	case "Zone":
		return parseZone(fields)
	case "Link":
		return parseLink(fields)
	default:
		return nil, fmt.Errorf("unrecognized record type %q", fields[0])
	}
}

// parseRule parses "Rule NAME FROM TO TYPE IN ON AT SAVE LETTER/S".
func parseRule(fields []string) (Record, error) {
	if len(fields) != 10 {
		return nil, fmt.Errorf("rule line has %d fields, expected 10", len(fields))
	}

	from, err := parseYear(fields[2])
	if err != nil {
		return nil, err
	}

	var to Year
	if fields[3] == "only" {
		to = from
	} else if to, err = parseYear(fields[3]); err != nil {
		return nil, err
	}

	// The TYPE column is vestigial; zic only ever sees "-".
	if fields[4] != "-" {
		return nil, fmt.Errorf("unsupported rule type %q", fields[4])
	}

	in, err := parseMonth(fields[5])
	if err != nil {
		return nil, err
	}

	on, err := parseDaySpec(fields[6])
	if err != nil {
		return nil, err
	}

	at, err := parseTimeSpec(fields[7])
	if err != nil {
		return nil, err
	}

	save, err := parseDuration(fields[8])
	if err != nil {
		return nil, err
	}

	letters := fields[9]
	if letters == "-" {
		letters = ""
	}

	return Rule{
		Name:    fields[1],
		From:    from,
		To:      to,
		In:      in,
		On:      on,
		At:      at,
		Save:    save,
		Letters: letters,
	}, nil
}

// parseZone parses "Zone NAME GMTOFF RULES FORMAT [UNTIL...]".
func parseZone(fields []string) (Record, error) {
	if len(fields) < 5 {
		return nil, fmt.Errorf("zone line has %d fields, expected at least 5", len(fields))
	}
	info, err := parseZoneInfo(fields[2:])
	if err != nil {
		return nil, err
	}
	return Zone{Name: fields[1], Info: info}, nil
}

// parseLink parses "Link TARGET NAME".
func parseLink(fields []string) (Record, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("link line has %d fields, expected 3", len(fields))
	}
	return Link{Target: fields[1], Name: fields[2]}, nil
}

// parseZoneInfo parses the "GMTOFF RULES FORMAT [UNTIL...]" tail shared by
// zone headers and continuations. fields must start at the GMTOFF column.
func parseZoneInfo(fields []string) (ZoneInfo, error) {
	if len(fields) < 3 {
		return ZoneInfo{}, fmt.Errorf("zone timespan has %d fields, expected at least 3", len(fields))
	}

	offset, err := parseDuration(fields[0])
	if err != nil {
		return ZoneInfo{}, err
	}

	saving, err := parseSaving(fields[1])
	if err != nil {
		return ZoneInfo{}, err
	}

	info := ZoneInfo{
		StdOffset: offset,
		Saving:    saving,
		Format:    fields[2],
	}

	if len(fields) > 3 {
		until, err := parseUntil(fields[3:])
		if err != nil {
			return ZoneInfo{}, err
		}
		info.Until = until
	}

	return info, nil
}

// parseSaving parses the RULES column: "-", a fixed offset, or a rule name.
func parseSaving(field string) (Saving, error) {
	if field == "-" {
		return Saving{Kind: SavingNone}, nil
	}
	if looksLikeDuration(field) {
		save, err := parseDuration(field)
		if err != nil {
			return Saving{}, err
		}
		return Saving{Kind: SavingFixed, Save: save}, nil
	}
	return Saving{Kind: SavingRules, Rules: field}, nil
}

// parseUntil parses "year [month [day [time]]]".
func parseUntil(fields []string) (*Until, error) {
	year, err := parseYear(fields[0])
	if err != nil {
		return nil, err
	}
	if year.Kind != YearNumber {
		return nil, fmt.Errorf("until year %q must be a plain year", fields[0])
	}

	until := &Until{
		Year:  year.Number,
		Month: time.January,
		Day:   DaySpec{Kind: DayExact, Day: 1},
		Time:  TimeSpec{Form: Wall},
	}

	if len(fields) > 1 {
		if until.Month, err = parseMonth(fields[1]); err != nil {
			return nil, err
		}
	}
	if len(fields) > 2 {
		if until.Day, err = parseDaySpec(fields[2]); err != nil {
			return nil, err
		}
	}
	if len(fields) > 3 {
		if until.Time, err = parseTimeSpec(fields[3]); err != nil {
			return nil, err
		}
	}
	if len(fields) > 4 {
		return nil, fmt.Errorf("until has %d fields, expected at most 4", len(fields))
	}

	return until, nil
}
