// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"tzgen-cli/internal/config"
	"tzgen-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedCfg holds the configuration resolved by initRootConfig. Nil when
	// loading failed; callers fall back to defaults.
	loadedCfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tzgen",
		Short: "A zoneinfo-to-Go compiler",
		Long: TitleStyle.Render("tzgen") + SubtitleStyle.Render(" - A zoneinfo-to-Go compiler") + `

tzgen reads IANA-style zoneinfo source files (Rule, Zone and Link
records) and compiles them into a tree of Go packages: one file per
time zone holding its precomputed transition history, one index file
per region package, and a root package with an O(1) name lookup.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Fetch the zoneinfo source files (e.g. from iana.org/time-zones)
  2. Run: tzgen compile --out ./tzdb --import-path example.com/tzdb europe africa
  3. Import the generated root package and call Lookup("Europe/Paris")

` + SubtitleStyle.Render("Examples:") + `
  tzgen compile --out ./tzdb europe     Compile one source file
  tzgen compile ./tzdata/*              Compile a whole release
  tzgen config show                     Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tzgen/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	provider := config.NewProvider()
	cfg, err := provider.Load(context.Background(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	loadedCfg = cfg

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// effectiveConfig returns the loaded configuration, or the defaults when
// loading failed or has not run.
func effectiveConfig() *config.Config {
	if loadedCfg != nil {
		return loadedCfg
	}
	return config.DefaultConfig()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
