// SPDX-License-Identifier: MPL-2.0

// Package commands is the default command namespace. Every file in this
// package defines one management command and registers it from an init
// function, so adding a file makes the command available without touching
// the runner.
package commands

import (
	"github.com/netme/manage/internal/registry"
)

var ns = registry.NewNamespace("commands")

// Namespace returns the registration table holding the built-in commands.
func Namespace() *registry.Namespace {
	return ns
}
