// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"github.com/netme/manage/internal/issue"
	"github.com/netme/manage/pkg/command"
)

// Registry enumerates a Namespace exactly once per instance and caches the
// resulting command list. The cache is read-only after the first build;
// the runner is single-threaded, so no locking is needed.
type Registry struct {
	ns       *Namespace
	commands map[string]command.Factory
	order    []string
}

// New creates a Registry over the given namespace. Enumeration is lazy:
// nothing is read until Commands or Names is called.
func New(ns *Namespace) *Registry {
	return &Registry{ns: ns}
}

// Commands returns the name-to-factory mapping for every command in the
// namespace, conforming or not. The mapping is built on first call and the
// identical cached map is returned afterwards. A missing namespace is a
// fatal startup error.
func (r *Registry) Commands() (map[string]command.Factory, error) {
	if err := r.build(); err != nil {
		return nil, err
	}
	return r.commands, nil
}

// Names returns the command names in enumeration order, which follows
// registration order and is stable for a fixed namespace.
func (r *Registry) Names() ([]string, error) {
	if err := r.build(); err != nil {
		return nil, err
	}
	return r.order, nil
}

// Lookup resolves a command name against the cached command list. It must
// only be called after a successful enumeration.
func (r *Registry) Lookup(name string) (command.Factory, bool) {
	factory, ok := r.commands[name]
	return factory, ok
}

func (r *Registry) build() error {
	if r.commands != nil {
		return nil
	}

	if r.ns == nil {
		return issue.NewErrorContext().
			WithOperation("enumerate command namespace").
			WithSuggestion("Construct the registry with a non-nil namespace").
			BuildError()
	}

	order := r.ns.names()
	commands := make(map[string]command.Factory, len(order))
	for _, name := range order {
		commands[name] = r.ns.units[name]
	}

	r.order = order
	r.commands = commands
	return nil
}
