// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"fmt"

	"github.com/netme/manage/pkg/command"
)

// flagValue adapts a flag declaration's coercion type to the pflag.Value
// interface. Set runs the coercion, so invalid input fails during parsing
// with the coercion's error, and the typed value is carried straight into
// the parsed invocation.
type flagValue struct {
	flag  *command.Flag
	value any
	set   bool
}

// Set coerces and records the raw command-line token.
func (v *flagValue) Set(raw string) error {
	value, err := v.flag.Type.Parse(raw)
	if err != nil {
		return err
	}
	v.value = value
	v.set = true
	return nil
}

// String renders the declared default for help output.
func (v *flagValue) String() string {
	if v.flag == nil || v.flag.Default == nil {
		return ""
	}
	return fmt.Sprint(v.flag.Default)
}

// Type returns the value placeholder shown in usage: the flag's metavar if
// declared, otherwise the coercion type's name.
func (v *flagValue) Type() string {
	return v.flag.Placeholder()
}
