// SPDX-License-Identifier: MPL-2.0

// Package cmd wires the management-command runner to the process: it
// builds the root command over the default namespace, applies the loaded
// configuration to the logger, and executes through fang for styled
// errors, version handling and signal-aware exit codes.
package cmd
