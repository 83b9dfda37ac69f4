package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"feelscope/internal/diagfmt"
	"feelscope/internal/driver"
	"feelscope/internal/trace"
)

type scenarioJSON struct {
	Path        string                   `json:"path"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics"`
	Count       int                      `json:"count"`
}

type checkJSON struct {
	Scenarios []scenarioJSON `json:"scenarios"`
	Errors    int            `json:"errors"`
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <path>...",
		Short: "Replay scenario files and report unresolved names",
		Long: `check loads every *.feel.toml scenario under the given paths, replays
its name requests against the declared variables and item definitions,
and prints the diagnostics.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
	cmd.Flags().Int("jobs", 0, "max parallel scenarios (0=auto)")
	cmd.Flags().String("snapshot", "", "write the scope trees of all scenarios to this file")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	snapshotPath, err := cmd.Flags().GetString("snapshot")
	if err != nil {
		return fmt.Errorf("failed to get snapshot flag: %w", err)
	}
	global, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	global.driver.Jobs = jobs

	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "check", 0)
	defer span.End("")

	var results []*driver.Result
	if format == "pretty" && !global.quiet && shouldUseTUI(mode) {
		files, collectErr := driver.CollectScenarios(args)
		if collectErr != nil {
			return collectErr
		}
		results, err = runCheckWithUI(ctx, "checking scenarios", files, args, global.driver)
	} else {
		results, err = driver.CheckAll(ctx, args, global.driver, nil)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var errCount int
	switch format {
	case "json":
		errCount, err = renderCheckJSON(out, results)
	default:
		errCount = renderCheckPretty(out, results, global)
	}
	if err != nil {
		return err
	}

	if snapshotPath != "" {
		if err := driver.WriteSnapshots(snapshotPath, results); err != nil {
			return err
		}
	}

	if !global.quiet && format == "pretty" {
		fmt.Fprintf(out, "%d scenario(s) checked, %d with errors\n", len(results), errCount)
	}
	if errCount > 0 {
		return errProblemsFound
	}
	return nil
}

func renderCheckPretty(out io.Writer, results []*driver.Result, opts globalOptions) int {
	errCount := 0
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Bag.HasErrors() {
			errCount++
		}
		res.Bag.Sort()
		diagfmt.Pretty(out, res.Bag, res.Files, diagfmt.PrettyOpts{
			Color:     opts.color,
			Context:   1,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
		})
		if n := res.Bag.Dropped(); n > 0 {
			fmt.Fprintf(out, "%s: %d more diagnostic(s) not shown (--max-diagnostics)\n", res.Path, n)
		}
		if opts.timings {
			fmt.Fprintf(out, "%s: %s", filepath.Base(res.Path), res.Timing.Summary())
		}
	}
	return errCount
}

func renderCheckJSON(out io.Writer, results []*driver.Result) (int, error) {
	payload := checkJSON{Scenarios: make([]scenarioJSON, 0, len(results))}
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Bag.HasErrors() {
			payload.Errors++
		}
		res.Bag.Sort()
		diags := diagfmt.BuildDiagnosticsOutput(res.Bag, res.Files, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		})
		payload.Scenarios = append(payload.Scenarios, scenarioJSON{
			Path:        res.Path,
			Diagnostics: diags.Diagnostics,
			Count:       diags.Count,
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return payload.Errors, fmt.Errorf("failed to write json: %w", err)
	}
	return payload.Errors, nil
}
