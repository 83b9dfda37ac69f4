package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"feelscope/internal/version"
)

// errProblemsFound makes the process exit with status 1 without printing
// anything beyond the diagnostics already shown.
var errProblemsFound = errors.New("problems found")

// newRootCmd builds the command tree. The returned cleanup stops the
// profilers and tracer started by the persistent flags; it must run even
// when the command fails.
func newRootCmd() (*cobra.Command, func()) {
	rootCmd := &cobra.Command{
		Use:   "feelscope",
		Short: "FEEL name and scope resolution checker",
		Long: `feelscope replays the scope and name requests a FEEL parser makes
against typed input variables and item definitions, and reports every
qualified name that does not resolve.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per scenario")
	pf.String("features", "", "TOML file with a [features] table")
	pf.String("trace", "", "trace output file (\"-\" for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write runtime trace to file")

	var cleanups []func()
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		stopProf, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopProf)
		stopTrace, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopTrace)
		return nil
	}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		cleanups = nil
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd, cleanup
}

// main builds the command tree and executes it. Any error exits with
// status 1.
func main() {
	rootCmd, cleanup := newRootCmd()
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		if !errors.Is(err, errProblemsFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func stderrf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
