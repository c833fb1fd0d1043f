// SPDX-License-Identifier: MPL-2.0

// Package issue defines the error types the compiler reports to users.
//
// Parse failures are positioned (file, 1-based line, message) and are
// aggregated across the whole input set before being surfaced in bulk.
// I/O failures are wrapped with operation and resource context instead.
package issue
