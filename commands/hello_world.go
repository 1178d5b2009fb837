// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"github.com/netme/manage/pkg/command"
)

func init() {
	ns.Register("hello_world", func() any { return &HelloWorld{} })
}

// HelloWorld is the smallest possible command: no flags, static output.
type HelloWorld struct{}

// Description returns the help line shown in the command list.
func (*HelloWorld) Description() string {
	return "Prints a hello world greeting"
}

// Arguments returns the flag schema; hello_world takes no flags.
func (*HelloWorld) Arguments() command.Schema {
	return nil
}

// Execute prints the greeting.
func (*HelloWorld) Execute(args *command.Args) error {
	_, err := fmt.Fprintln(args.Out, "Hello world!")
	return err
}
