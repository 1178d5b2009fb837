// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"github.com/netme/manage/pkg/command"
)

func init() {
	ns.Register("hello_user", func() any { return &HelloUser{} })
}

// HelloUser greets the user named by the required --name flag.
type HelloUser struct{}

// Description returns the help line shown in the command list.
func (*HelloUser) Description() string {
	return "Greets the given user"
}

// Arguments declares the single required --name flag.
func (*HelloUser) Arguments() command.Schema {
	return command.Schema{
		{
			Name:     "--name",
			Type:     command.String,
			Help:     "The name of the user",
			Metavar:  "John",
			Required: true,
		},
	}
}

// Execute prints the greeting.
func (*HelloUser) Execute(args *command.Args) error {
	_, err := fmt.Fprintf(args.Out, "Hello %s!\n", args.String("name"))
	return err
}
