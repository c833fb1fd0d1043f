// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the tzgen configuration. Settings come
// from an optional TOML file merged over built-in defaults, with TZGEN_*
// environment variables taking precedence over both.
package config
