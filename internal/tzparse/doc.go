// SPDX-License-Identifier: MPL-2.0

// Package tzparse implements the line grammar for IANA-style zoneinfo source
// files: Rule, Zone (with continuation lines), and Link records.
//
// The grammar is deliberately dumb: it turns one comment-stripped physical
// line into one typed record and nothing more. Cross-line structure (which
// zone a continuation belongs to, whether a rule name resolves) is the record
// table's job, see internal/tztable.
package tzparse
