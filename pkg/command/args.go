// SPDX-License-Identifier: MPL-2.0

package command

import (
	"io"
	"os"
	"time"
)

// Args is the parsed invocation handed to a command's Execute: the selected
// command name plus one entry per declared flag. Every flag from the
// command's schema is present after a successful parse; flags the user did
// not set carry their declared default, or nil when there is none.
type Args struct {
	// Command is the resolved command name.
	Command string
	// Out and Err are the output streams the command should write to.
	// The runner injects the process streams; tests inject buffers.
	Out io.Writer
	Err io.Writer

	values map[string]any
	set    map[string]bool
}

// NewArgs creates an empty parsed invocation for the given command. Nil
// writers default to the process streams.
func NewArgs(name string, out, errOut io.Writer) *Args {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Args{
		Command: name,
		Out:     out,
		Err:     errOut,
		values:  make(map[string]any),
		set:     make(map[string]bool),
	}
}

// Set records a flag's typed value. Explicit marks values the user supplied
// on the command line, as opposed to declared defaults.
func (a *Args) Set(name string, value any, explicit bool) {
	a.values[name] = value
	a.set[name] = explicit
}

// Has reports whether the flag is declared in the invocation at all, even
// if its value is nil.
func (a *Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// IsSet reports whether the user explicitly supplied the flag.
func (a *Args) IsSet(name string) bool {
	return a.set[name]
}

// Value returns the flag's typed value, or nil when the flag is unset and
// has no default.
func (a *Args) Value(name string) any {
	return a.values[name]
}

// String returns the flag's value as a string, or "" when it is unset or
// not a string.
func (a *Args) String(name string) string {
	v, _ := a.values[name].(string)
	return v
}

// Int returns the flag's value as an int, or 0 when it is unset or not an
// int.
func (a *Args) Int(name string) int {
	v, _ := a.values[name].(int)
	return v
}

// Bool returns the flag's value as a bool, or false when it is unset or
// not a bool.
func (a *Args) Bool(name string) bool {
	v, _ := a.values[name].(bool)
	return v
}

// Float returns the flag's value as a float64, or 0 when it is unset or
// not a float64.
func (a *Args) Float(name string) float64 {
	v, _ := a.values[name].(float64)
	return v
}

// Duration returns the flag's value as a time.Duration, or 0 when it is
// unset or not a duration.
func (a *Args) Duration(name string) time.Duration {
	v, _ := a.values[name].(time.Duration)
	return v
}
