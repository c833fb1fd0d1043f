// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tzgen-cli/internal/compile"
	"tzgen-cli/internal/issue"
)

var (
	// outDir overrides output.dir from the configuration.
	outDir string
	// importPath overrides output.import_path from the configuration.
	importPath string
	// typesImportPath overrides output.types_import_path from the configuration.
	typesImportPath string

	compileCmd = &cobra.Command{
		Use:   "compile <input>...",
		Short: "Compile zoneinfo source files into a Go package tree",
		Long: `Compile zoneinfo source files into a Go package tree.

Every input file is parsed in full before compilation starts; a malformed
line is reported with its file and line number, and all failures across all
inputs are listed in one run. Output is written to a staging directory and
swapped into place only after the last file succeeded, so a failed run
leaves any previous output untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCompile,
	}
)

func init() {
	compileCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory for the generated tree")
	compileCmd.Flags().StringVar(&importPath, "import-path", "", "import path of the generated root package")
	compileCmd.Flags().StringVar(&typesImportPath, "types-import-path", "", "import path of the runtime types package")
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig()

	out := outDir
	if out == "" {
		out = string(cfg.Output.Dir)
	}
	ip := importPath
	if ip == "" {
		ip = string(cfg.Output.ImportPath)
	}
	tip := typesImportPath
	if tip == "" {
		tip = cfg.Output.TypesImportPath
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	fsys := afero.NewOsFs()

	table, err := compile.Load(fsys, args)
	if err != nil {
		return reportLoadFailure(err)
	}

	compiler := compile.New(table, compile.Options{
		BasePath:        out,
		ImportPath:      ip,
		TypesImportPath: tip,
		Fs:              fsys,
		Logger:          logger,
	})
	if err := compiler.Run(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: errors.New("compilation failed")}
	}

	fmt.Printf("%s Compiled %d zones and %d aliases into %s\n",
		SuccessStyle.Render("✓"),
		len(table.ZoneNames()), len(table.AliasNames()),
		PathStyle.Render(out))
	return nil
}

// reportLoadFailure prints parse failures or a fatal load error and wraps the
// outcome in an ExitError. Parse failures are printed one per line, every
// file's worth at once, before giving up.
func reportLoadFailure(err error) error {
	var list issue.ErrorList
	if errors.As(err, &list) {
		for _, failure := range list {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+failure.Error())
		}
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Errors occurred, not going any further."))
		return &ExitError{Code: 1, Err: fmt.Errorf("%d line(s) could not be parsed", len(list))}
	}

	fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+formatErrorForDisplay(err, verbose))
	return &ExitError{Code: 1, Err: err}
}
