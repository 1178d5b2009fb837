// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/netme/manage/commands"
	"github.com/netme/manage/internal/config"
	"github.com/netme/manage/internal/issue"
	"github.com/netme/manage/internal/registry"
	"github.com/netme/manage/internal/runner"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose raises the log level to debug
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
)

// newRootCmd builds the root command over the default command namespace.
// Every conforming built-in command appears as a subcommand; a malformed
// schema or unreadable namespace surfaces here as a fatal error.
func newRootCmd() (*cobra.Command, error) {
	r := runner.New(registry.New(commands.Namespace()))

	root, err := r.BuildParser()
	if err != nil {
		return nil, err
	}

	root.Long = TitleStyle.Render("manage") + SubtitleStyle.Render(" - runs a management command") + `

Each management command is a self-contained unit with its own flags.
Commands register themselves into the default namespace; run with no
arguments to see what is available.

` + SubtitleStyle.Render("Examples:") + `
  ` + CmdStyle.Render("manage hello_world") + `
  ` + CmdStyle.Render("manage hello_user --name=John")

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config-dir>/manage/config.cue)")

	return root, nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the root command and runs it. Called by main.main().
func Execute() {
	cobra.OnInitialize(initRootConfig)

	root, err := newRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		os.Exit(1)
	}

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig loads the config file and applies it to the logger.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}

	applyLogConfig(cfg)
}

// applyLogConfig configures the default logger from the loaded config.
func applyLogConfig(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		log.SetFormatter(log.JSONFormatter)
	case "logfmt":
		log.SetFormatter(log.LogfmtFormatter)
	default:
		log.SetFormatter(log.TextFormatter)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render with their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
