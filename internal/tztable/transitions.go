// SPDX-License-Identifier: MPL-2.0

package tztable

import (
	"sort"
	"strings"
	"time"

	"tzgen-cli/internal/tzparse"
)

// expansionHorizon is the last year expanded for a zone whose final span
// carries open-ended rules. Matches the classic TZif v1 POSIX horizon.
const expansionHorizon = 2037

// earliestRuleYear floors "minimum" rule years; no surviving rule predates it.
const earliestRuleYear = 1800

type (
	// Timespan is a UTC offset, DST offset, and abbreviation in effect over
	// one contiguous interval. The offsets stay split here so the encoder can
	// record both; consumers of generated data only ever see the total.
	Timespan struct {
		UTCOffset int // seconds east of UTC
		DSTOffset int // additional saving, zero outside DST
		Abbrev    string
	}

	// Transition marks the UTC instant a new timespan takes effect.
	Transition struct {
		When     int64
		Timespan Timespan
	}

	// Zoneset is a zone's complete history: the timespan in effect before
	// the earliest transition, then every transition sorted strictly
	// ascending by instant.
	Zoneset struct {
		First Timespan
		Rest  []Transition
	}
)

// TotalOffset is the full shift from UTC in seconds, saving included.
func (ts Timespan) TotalOffset() int {
	return ts.UTCOffset + ts.DSTOffset
}

// IsDST reports whether any daylight saving is in effect.
func (ts Timespan) IsDST() bool {
	return ts.DSTOffset != 0
}

// TransitionHistory resolves a zone or alias name (transitively through
// links) to its expanded transition history. The second return value is
// false for unknown names.
func (t *Table) TransitionHistory(name string) (*Zoneset, bool) {
	resolved, ok := t.resolve(name)
	if !ok {
		return nil, false
	}
	return t.expand(t.zones[resolved]), true
}

// expand turns a zone's ordered span list into a Zoneset.
func (t *Table) expand(spans []tzparse.ZoneInfo) *Zoneset {
	set := &Zoneset{}

	var start int64 // UTC instant the current span begins at; valid once started
	started := false
	prevSave := 0

	for _, span := range spans {
		switch span.Saving.Kind {
		case tzparse.SavingNone, tzparse.SavingFixed:
			save := 0
			if span.Saving.Kind == tzparse.SavingFixed {
				save = span.Saving.Save
			}
			ts := Timespan{
				UTCOffset: span.StdOffset,
				DSTOffset: save,
				Abbrev:    formatAbbrev(span.Format, save, ""),
			}
			if !started {
				set.First = ts
			} else {
				set.Rest = append(set.Rest, Transition{When: start, Timespan: ts})
			}
			prevSave = save

		case tzparse.SavingRules:
			rules := t.rules[span.Saving.Rules]
			std := Timespan{
				UTCOffset: span.StdOffset,
				Abbrev:    formatAbbrev(span.Format, 0, initialLetters(rules)),
			}
			if !started {
				set.First = std
			} else {
				set.Rest = append(set.Rest, Transition{When: start, Timespan: std})
			}
			prevSave = t.applyRules(set, rules, span, start, started)
		}

		if span.Until == nil {
			break
		}
		start = untilInstant(span.Until, span.StdOffset, prevSave)
		started = true
	}

	normalize(set)
	return set
}

// applyRules appends the rule-driven transitions of one span and returns the
// saving in effect when the span ends.
func (t *Table) applyRules(set *Zoneset, rules []tzparse.Rule, span tzparse.ZoneInfo, start int64, started bool) int {
	utc := span.StdOffset

	startYear := earliestRuleYear
	if started {
		startYear = time.Unix(start, 0).UTC().Year()
	}
	endYear := expansionHorizon
	if span.Until != nil {
		endYear = span.Until.Year
	}

	// One spare year on each side absorbs wall-clock boundary effects; an
	// open-ended span stops dead at the horizon instead.
	lastYear := endYear + 1
	if span.Until == nil {
		lastYear = endYear
	}

	// One candidate per rule activation year, ordered by naive local time so
	// each transition can be converted using the saving left by the one
	// before it.
	type candidate struct {
		naive int64
		rule  tzparse.Rule
		order int
	}
	var candidates []candidate

	for i, r := range rules {
		from := startYear - 1
		if r.From.Kind == tzparse.YearNumber && r.From.Number > from {
			from = r.From.Number
		}
		to := lastYear
		if r.To.Kind == tzparse.YearNumber && r.To.Number < to {
			to = r.To.Number
		}
		if r.To.Kind == tzparse.YearMinimum {
			to = from
		}

		for y := from; y <= to; y++ {
			day := r.On.Date(y, r.In)
			naive := time.Date(y, r.In, day, 0, 0, 0, 0, time.UTC).Unix() + int64(r.At.Seconds)
			candidates = append(candidates, candidate{naive: naive, rule: r, order: i})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].naive != candidates[j].naive {
			return candidates[i].naive < candidates[j].naive
		}
		return candidates[i].order < candidates[j].order
	})

	save := 0
	for _, c := range candidates {
		instant := c.naive
		switch c.rule.At.Form {
		case tzparse.Wall:
			instant -= int64(utc) + int64(save)
		case tzparse.Standard:
			instant -= int64(utc)
		}

		if started && instant < start {
			continue
		}
		if span.Until != nil && instant >= untilInstant(span.Until, utc, save) {
			continue
		}

		set.Rest = append(set.Rest, Transition{
			When: instant,
			Timespan: Timespan{
				UTCOffset: utc,
				DSTOffset: c.rule.Save,
				Abbrev:    formatAbbrev(span.Format, c.rule.Save, c.rule.Letters),
			},
		})
		save = c.rule.Save
	}
	return save
}

// untilInstant converts a span's UNTIL bound to a UTC instant using the
// offsets in effect as the bound is reached.
func untilInstant(u *tzparse.Until, utc, save int) int64 {
	day := u.Day.Date(u.Year, u.Month)
	naive := time.Date(u.Year, u.Month, day, 0, 0, 0, 0, time.UTC).Unix() + int64(u.Time.Seconds)
	switch u.Time.Form {
	case tzparse.Wall:
		return naive - int64(utc) - int64(save)
	case tzparse.Standard:
		return naive - int64(utc)
	default:
		return naive
	}
}

// normalize sorts transitions ascending and drops duplicate instants,
// keeping the later-emitted entry (a rule transition that coincides with its
// span's start wins over the span's standard-time placeholder).
func normalize(set *Zoneset) {
	sort.SliceStable(set.Rest, func(i, j int) bool {
		return set.Rest[i].When < set.Rest[j].When
	})

	out := set.Rest[:0]
	for _, tr := range set.Rest {
		if n := len(out); n > 0 && out[n-1].When == tr.When {
			out[n-1] = tr
			continue
		}
		out = append(out, tr)
	}
	set.Rest = out
}

// initialLetters picks the LETTER/S value for a span's standard-time
// placeholder: the letters of the earliest standard-time rule in the set.
func initialLetters(rules []tzparse.Rule) string {
	best := ""
	bestYear := 0
	found := false
	for _, r := range rules {
		if r.Save != 0 {
			continue
		}
		year := earliestRuleYear
		if r.From.Kind == tzparse.YearNumber {
			year = r.From.Number
		}
		if !found || year < bestYear {
			best, bestYear, found = r.Letters, year, true
		}
	}
	return best
}

// formatAbbrev expands a zone's FORMAT column for a concrete saving: either
// the "STD/DST" pair form, the "%s" letter-substitution form, or a literal.
func formatAbbrev(format string, save int, letters string) string {
	if std, dst, ok := strings.Cut(format, "/"); ok {
		if save == 0 {
			return std
		}
		return dst
	}
	if strings.Contains(format, "%s") {
		return strings.Replace(format, "%s", letters, 1)
	}
	return format
}
