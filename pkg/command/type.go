// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"strconv"
	"time"
)

// Type is a polymorphic value coercion for a flag: it turns the raw
// command-line token into a typed value, or fails with a parse error that
// surfaces as a user-input error. The zero Type behaves like String.
type Type struct {
	name  string
	parse func(raw string) (any, error)
}

// Built-in coercion types.
var (
	// String passes the raw token through unchanged.
	String = Type{name: "string", parse: func(raw string) (any, error) {
		return raw, nil
	}}

	// Int coerces to int.
	Int = Type{name: "int", parse: func(raw string) (any, error) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid integer", raw)
		}
		return v, nil
	}}

	// Bool coerces to bool, accepting the strconv.ParseBool forms.
	Bool = Type{name: "bool", parse: func(raw string) (any, error) {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid boolean", raw)
		}
		return v, nil
	}}

	// Float coerces to float64.
	Float = Type{name: "float", parse: func(raw string) (any, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid number", raw)
		}
		return v, nil
	}}

	// Duration coerces to time.Duration using the Go duration syntax.
	Duration = Type{name: "duration", parse: func(raw string) (any, error) {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid duration", raw)
		}
		return v, nil
	}}
)

// TypeFunc defines a custom coercion type. The name is shown as the value
// placeholder in help output when the flag declares no metavar.
func TypeFunc(name string, parse func(raw string) (any, error)) Type {
	return Type{name: name, parse: parse}
}

// Name returns the effective type name (defaults to "string" for the zero
// Type).
func (t Type) Name() string {
	if t.name == "" {
		return String.name
	}
	return t.name
}

// Parse coerces the raw token into the typed value.
func (t Type) Parse(raw string) (any, error) {
	if t.parse == nil {
		return raw, nil
	}
	return t.parse(raw)
}
