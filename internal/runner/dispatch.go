// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netme/manage/pkg/command"
)

// dispatch resolves the selected subcommand back to its unit, instantiates
// a fresh instance, and invokes Execute with the parsed flags. A unit
// without Execute is only discovered here and fails loudly.
func (r *Runner) dispatch(cmd *cobra.Command, schema command.Schema, values map[string]*flagValue) error {
	name := cmd.Annotations[commandAnnotation]

	factory, ok := r.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("command %q is not registered", name)
	}

	unit := factory()
	executor, ok := unit.(command.Executor)
	if !ok {
		return fmt.Errorf("command %q does not implement Execute", name)
	}

	args := command.NewArgs(name, r.out, r.errOut)
	for i := range schema {
		canonical := schema[i].CanonicalName()
		if fv := values[canonical]; fv != nil && fv.set {
			args.Set(canonical, fv.value, true)
		} else {
			args.Set(canonical, schema[i].Default, false)
		}
	}

	return executor.Execute(args)
}
