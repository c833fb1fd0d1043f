// SPDX-License-Identifier: MPL-2.0

// Package compile turns a finalized record table into a tree of generated Go
// packages: one package per namespace directory, one file per zone or alias,
// and a root index with a constant-time name lookup.
//
// Loading and emission are split. Load aggregates every parse failure across
// the whole input set before giving up; the Compiler then writes the output
// tree into a staging directory and swaps it into place only once every unit
// has been written, so an I/O failure never leaves a half-updated tree.
package compile
