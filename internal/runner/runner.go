// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/netme/manage/internal/registry"
)

// Runner wires a command registry to the process: it builds the argument
// parser and routes parsed input to the selected command unit. One process
// invocation dispatches exactly one command.
type Runner struct {
	registry *registry.Registry
	logger   *log.Logger
	out      io.Writer
	errOut   io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for build-time diagnostics, such as
// skipped non-conforming commands.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithOutput redirects the streams handed to dispatched commands and used
// for parser output. Intended for tests.
func WithOutput(out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.out = out
		r.errOut = errOut
	}
}

// New creates a Runner over the given registry.
func New(reg *registry.Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: reg,
		logger:   log.Default(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run parses argv (the process arguments without the program name) and
// dispatches to the selected command. User-input errors carry the parser's
// diagnostic and leave usage on the error stream; execution errors
// propagate unchanged.
func (r *Runner) Run(argv []string) error {
	root, err := r.BuildParser()
	if err != nil {
		return err
	}
	if argv == nil {
		argv = []string{}
	}
	root.SetArgs(argv)
	return root.Execute()
}
