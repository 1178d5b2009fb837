// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"github.com/netme/manage/pkg/command"
)

// Namespace is an enumerable collection of command units. Command files
// add themselves to a shared Namespace from their init functions, which
// preserves the "add a file, it's automatically available" ergonomic
// without runtime package scanning.
type Namespace struct {
	name  string
	order []string
	units map[string]command.Factory
}

// NewNamespace creates an empty namespace with the given name. The name
// only appears in diagnostics.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:  name,
		units: make(map[string]command.Factory),
	}
}

// Name returns the namespace name.
func (n *Namespace) Name() string {
	return n.name
}

// Register adds a command factory under the given name. Registering the
// same name twice replaces the factory: the last registration wins, while
// the name keeps its original position in enumeration order.
func (n *Namespace) Register(name string, factory command.Factory) {
	if _, exists := n.units[name]; !exists {
		n.order = append(n.order, name)
	}
	n.units[name] = factory
}

// Len returns the number of registered commands.
func (n *Namespace) Len() int {
	return len(n.units)
}

// names returns the registered command names in registration order.
func (n *Namespace) names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}
