// SPDX-License-Identifier: MPL-2.0

// Package tztable accumulates parsed zoneinfo records into an immutable
// Table: the namespace structure of all zone and alias names, and the
// expanded transition history of each zone.
//
// A Builder accepts records one at a time and rejects structural violations
// (a continuation with no open zone, duplicate names) with message errors
// that the compiler attaches to the offending source line. Finalize checks
// cross-record references (rule names, link targets) and freezes the result.
package tztable
