// SPDX-License-Identifier: MPL-2.0

// Package tzdata defines the runtime types embedded in generated zone
// packages. Generated code references these types only; all behavior lives
// with the consumer.
package tzdata

// FixedTimespan is one contiguous interval during which a zone keeps a single
// offset and abbreviation. Offset is the total shift from UTC in seconds,
// with any daylight saving already folded in.
type FixedTimespan struct {
	Offset int
	IsDST  bool
	Abbrev string
}

// Transition marks the instant (seconds since the Unix epoch, UTC) at which
// a new timespan takes effect.
type Transition struct {
	When     int64
	Timespan FixedTimespan
}

// FixedTimespanSet is the complete transition history of a zone. First is the
// timespan in effect before the earliest transition; Rest is sorted ascending
// by When and contains no duplicate instants.
type FixedTimespanSet struct {
	First FixedTimespan
	Rest  []Transition
}

// Zone is one compiled time zone or alias. Name is the original IANA name,
// unsanitized (e.g. "America/Port-au-Prince").
type Zone struct {
	Name      string
	Timespans FixedTimespanSet
}
