// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"strings"
)

type (
	// Flag declares one command-line flag of a command's schema.
	Flag struct {
		// Name is the flag name. The conventional leading dashes
		// ("--name") are accepted and stripped when the flag is
		// registered.
		Name string
		// Type coerces the raw value; the zero value means String.
		Type Type
		// Help is the usage text shown next to the flag.
		Help string
		// Metavar overrides the value placeholder shown in help output
		// (defaults to the type name).
		Metavar string
		// Required marks the flag as mandatory at parse time.
		Required bool
		// Default is the value the parsed invocation carries when the
		// user does not set the flag. May be nil.
		Default any
	}

	// Schema is a command's flag declarations, in declaration order.
	// Subcommand help lists flags in this order.
	Schema []Flag
)

// CanonicalName returns the flag name without the conventional leading
// dashes.
func (f *Flag) CanonicalName() string {
	return strings.TrimLeft(f.Name, "-")
}

// Placeholder returns the value placeholder for help output: the metavar if
// set, otherwise the type name.
func (f *Flag) Placeholder() string {
	if f.Metavar != "" {
		return f.Metavar
	}
	return f.Type.Name()
}

// Validate reports schema construction errors: empty or duplicate flag
// names. These are programmer errors in the command definition, so parser
// construction fails instead of skipping the command.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for i := range s {
		name := s[i].CanonicalName()
		if name == "" {
			return fmt.Errorf("flag %d has an empty name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate flag --%s", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
