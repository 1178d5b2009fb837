// SPDX-License-Identifier: MPL-2.0

package command

type (
	// Describer exposes the one-line description shown in help output.
	Describer interface {
		Description() string
	}

	// SchemaProvider exposes the unit's flag declarations.
	SchemaProvider interface {
		Arguments() Schema
	}

	// Executor runs the unit with the parsed invocation. Errors propagate
	// unwrapped to the process boundary.
	Executor interface {
		Execute(args *Args) error
	}

	// Factory instantiates a fresh command unit. The runner calls it once
	// to probe metadata while building the parser, and once more per
	// dispatch.
	Factory func() any
)
