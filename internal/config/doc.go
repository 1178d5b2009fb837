// SPDX-License-Identifier: MPL-2.0

// Package config loads the runner configuration from defaults, an optional
// CUE config file, and MANAGE_* environment variables, in that order of
// precedence (later wins). The config file is validated against an
// embedded CUE schema before it is merged.
package config
