// SPDX-License-Identifier: MPL-2.0

// Package registry holds the explicit registration table that stands in
// for runtime namespace scanning: each command unit registers a factory
// under its name (usually from an init function in the command's file),
// and the Registry enumerates a namespace exactly once, caching the
// resulting name-to-factory command list for the life of the instance.
package registry
