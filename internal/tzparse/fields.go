// SPDX-License-Identifier: MPL-2.0

package tzparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type (
	// Year is a FROM/TO column value: a plain year, or the open-ended
	// "minimum"/"maximum" keywords.
	Year struct {
		Kind   YearKind
		Number int // for YearNumber
	}

	// DaySpec is an ON column value: an exact day of month, the last given
	// weekday, or the first given weekday on or after/before a day.
	DaySpec struct {
		Kind    DayKind
		Weekday time.Weekday // for all kinds except DayExact
		Day     int          // for DayExact, DayOnOrAfter, DayOnOrBefore
	}

	// TimeSpec is an AT or UNTIL time-of-day: seconds past midnight plus the
	// clock the value is read against.
	TimeSpec struct {
		Seconds int
		Form    TimeForm
	}
)

// YearKind discriminates Year values.
type YearKind int

const (
	YearNumber YearKind = iota
	YearMinimum
	YearMaximum
)

// DayKind discriminates DaySpec values.
type DayKind int

const (
	DayExact DayKind = iota
	DayLast
	DayOnOrAfter
	DayOnOrBefore
)

// TimeForm says which clock a TimeSpec is expressed in. Wall is the zic
// default when no suffix letter is present.
type TimeForm int

const (
	Wall TimeForm = iota
	Standard
	Universal
)

// Date resolves the spec to a concrete day of month.
func (d DaySpec) Date(year int, month time.Month) int {
	switch d.Kind {
	case DayExact:
		return d.Day
	case DayLast:
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		day := last.Day()
		for last.Weekday() != d.Weekday {
			last = last.AddDate(0, 0, -1)
			day--
		}
		return day
	case DayOnOrAfter:
		t := time.Date(year, month, d.Day, 0, 0, 0, 0, time.UTC)
		for t.Weekday() != d.Weekday {
			t = t.AddDate(0, 0, 1)
		}
		return t.Day()
	case DayOnOrBefore:
		t := time.Date(year, month, d.Day, 0, 0, 0, 0, time.UTC)
		for t.Weekday() != d.Weekday {
			t = t.AddDate(0, 0, -1)
		}
		return t.Day()
	}
	return d.Day
}

// parseYear parses a FROM/TO column value. Keywords may be abbreviated to a
// unique prefix of at least two characters, matching zic.
func parseYear(field string) (Year, error) {
	lower := strings.ToLower(field)
	switch {
	case len(lower) >= 2 && strings.HasPrefix("minimum", lower):
		return Year{Kind: YearMinimum}, nil
	case len(lower) >= 2 && strings.HasPrefix("maximum", lower):
		return Year{Kind: YearMaximum}, nil
	}

	n, err := strconv.Atoi(field)
	if err != nil {
		return Year{}, fmt.Errorf("invalid year %q", field)
	}
	return Year{Kind: YearNumber, Number: n}, nil
}

// parseMonth matches a unique, case-insensitive prefix of an English month
// name.
func parseMonth(field string) (time.Month, error) {
	lower := strings.ToLower(field)
	var found time.Month
	matches := 0
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), lower) {
			found = m
			matches++
		}
	}
	switch matches {
	case 1:
		return found, nil
	case 0:
		return 0, fmt.Errorf("invalid month %q", field)
	default:
		return 0, fmt.Errorf("ambiguous month %q", field)
	}
}

// parseWeekday matches a unique, case-insensitive prefix of an English
// weekday name.
func parseWeekday(field string) (time.Weekday, error) {
	lower := strings.ToLower(field)
	var found time.Weekday
	matches := 0
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.HasPrefix(strings.ToLower(wd.String()), lower) {
			found = wd
			matches++
		}
	}
	switch matches {
	case 1:
		return found, nil
	case 0:
		return 0, fmt.Errorf("invalid weekday %q", field)
	default:
		return 0, fmt.Errorf("ambiguous weekday %q", field)
	}
}

// parseDaySpec parses an ON column value: "22", "lastSun", "Sun>=8", or
// "Sun<=25".
func parseDaySpec(field string) (DaySpec, error) {
	if n, err := strconv.Atoi(field); err == nil {
		if n < 1 || n > 31 {
			return DaySpec{}, fmt.Errorf("day of month %q out of range", field)
		}
		return DaySpec{Kind: DayExact, Day: n}, nil
	}

	if rest, ok := strings.CutPrefix(field, "last"); ok {
		wd, err := parseWeekday(rest)
		if err != nil {
			return DaySpec{}, err
		}
		return DaySpec{Kind: DayLast, Weekday: wd}, nil
	}

	for _, op := range []struct {
		sep  string
		kind DayKind
	}{
		{">=", DayOnOrAfter},
		{"<=", DayOnOrBefore},
	} {
		wdPart, dayPart, ok := strings.Cut(field, op.sep)
		if !ok {
			continue
		}
		wd, err := parseWeekday(wdPart)
		if err != nil {
			return DaySpec{}, err
		}
		day, err := strconv.Atoi(dayPart)
		if err != nil || day < 1 || day > 31 {
			return DaySpec{}, fmt.Errorf("day of month %q out of range", dayPart)
		}
		return DaySpec{Kind: op.kind, Weekday: wd, Day: day}, nil
	}

	return DaySpec{}, fmt.Errorf("invalid day specification %q", field)
}

// parseTimeSpec parses an AT or UNTIL time: "[-]h[:mm[:ss]]" with an
// optional trailing clock letter (w, s, u, g, or z).
func parseTimeSpec(field string) (TimeSpec, error) {
	form := Wall
	if len(field) > 0 {
		switch field[len(field)-1] {
		case 'w':
			field = field[:len(field)-1]
		case 's':
			form = Standard
			field = field[:len(field)-1]
		case 'u', 'g', 'z':
			form = Universal
			field = field[:len(field)-1]
		}
	}

	secs, err := parseDuration(field)
	if err != nil {
		return TimeSpec{}, err
	}
	return TimeSpec{Seconds: secs, Form: form}, nil
}

// parseDuration parses "[-]h[:mm[:ss]]" into seconds. Hours are unbounded
// (zic allows times past 24:00); minutes and seconds must stay below 60.
func parseDuration(field string) (int, error) {
	s := field
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", field)
	}

	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q", field)
		}
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("invalid time %q", field)
		}
		total = total*60 + n
	}
	// Normalize "h" and "h:mm" up to seconds.
	for i := len(parts); i < 3; i++ {
		total *= 60
	}

	if negative {
		total = -total
	}
	return total, nil
}

// looksLikeDuration reports whether a RULES column value is a fixed saving
// amount rather than a rule set name.
func looksLikeDuration(field string) bool {
	s := strings.TrimPrefix(field, "-")
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
