// SPDX-License-Identifier: MPL-2.0

// Package runner builds the two-level argument grammar for a command
// registry and dispatches parsed invocations to the selected command unit.
//
// The root command requires a command name; each conforming unit in the
// registry contributes one subcommand carrying the unit's declared flags.
// Units missing the description or schema capability are logged and left
// out of the CLI surface entirely. Dispatch resolves the selected name back
// through the registry, instantiates a fresh unit, and calls Execute with
// the parsed flags; execution errors propagate to the process boundary
// unwrapped.
package runner
