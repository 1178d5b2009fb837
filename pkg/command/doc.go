// SPDX-License-Identifier: MPL-2.0

// Package command defines the contract between the management-command
// runner and the command units it dispatches to.
//
// A command unit is any value that offers the command capability set: a
// one-line description, an ordered flag schema, and an execution entry
// point. The capabilities are probed independently at different stages of
// the runner's lifecycle: a unit missing Description or Arguments is
// excluded from the CLI surface when the parser is built, while a unit
// missing Execute fails loudly at dispatch time.
package command
