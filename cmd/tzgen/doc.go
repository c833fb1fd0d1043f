// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for tzgen.
//
// This package implements the Cobra command hierarchy for the tzgen CLI:
// the root command, the compile command that turns zoneinfo source files
// into a generated Go package tree, and configuration utilities.
package cmd
