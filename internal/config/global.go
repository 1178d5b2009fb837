// SPDX-License-Identifier: MPL-2.0

package config

// configFilePathOverride holds the path given via the --config flag.
var configFilePathOverride string

// SetConfigFilePathOverride points Load at an explicit config file, as set
// by the root --config flag.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configFilePathOverride = ""
}
