// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing errors for the runner's
// fatal failure paths: enumerating the command namespace, loading the
// configuration, and building the argument parser.
package issue
