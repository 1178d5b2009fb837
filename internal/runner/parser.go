// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netme/manage/pkg/command"
)

// commandAnnotation is the annotation key recording the command name a
// subcommand dispatches to.
const commandAnnotation = "command"

// BuildParser constructs the two-level grammar: a root command that
// requires a command name, plus one subcommand per conforming unit in the
// registry. Non-conforming units (missing the description or schema
// capability) are logged at error level and skipped; a malformed flag
// schema is a programmer error and fails the build.
func (r *Runner) BuildParser() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "manage <command>",
		Short: "Runs a management command",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a command name is required")
			}
			return fmt.Errorf("unknown command %q", args[0])
		},
		SilenceErrors: true,
	}
	root.SetOut(r.out)
	root.SetErr(r.errOut)

	names, err := r.registry.Names()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		factory, _ := r.registry.Lookup(name)
		probe := factory()

		describer, ok := probe.(command.Describer)
		if !ok {
			r.logger.Error("skipping non-conforming command",
				"command", name, "missing", "description")
			continue
		}
		provider, ok := probe.(command.SchemaProvider)
		if !ok {
			r.logger.Error("skipping non-conforming command",
				"command", name, "missing", "argument schema")
			continue
		}

		sub, err := r.newSubcommand(name, describer.Description(), provider.Arguments())
		if err != nil {
			return nil, err
		}
		root.AddCommand(sub)
	}

	return root, nil
}

// newSubcommand builds the subparser for one conforming unit: its declared
// flags in schema order, with the command name tagged in the annotations
// for dispatch.
func (r *Runner) newSubcommand(name, description string, schema command.Schema) (*cobra.Command, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("build parser for command %q: %w", name, err)
	}

	values := make(map[string]*flagValue, len(schema))

	sub := &cobra.Command{
		Use:         name,
		Short:       description,
		Annotations: map[string]string{commandAnnotation: name},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.dispatch(cmd, schema, values)
		},
		SilenceErrors: true,
	}

	for i := range schema {
		flag := &schema[i]
		canonical := flag.CanonicalName()
		fv := &flagValue{flag: flag}
		values[canonical] = fv

		sub.Flags().Var(fv, canonical, flag.Help)
		if flag.Type.Name() == command.Bool.Name() {
			sub.Flags().Lookup(canonical).NoOptDefVal = "true"
		}
		if flag.Required {
			if err := sub.MarkFlagRequired(canonical); err != nil {
				return nil, fmt.Errorf("build parser for command %q: %w", name, err)
			}
		}
	}

	return sub, nil
}
