package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"feelscope/internal/config"
	"feelscope/internal/driver"
)

type globalOptions struct {
	color   bool
	quiet   bool
	timings bool
	driver  driver.Options
}

func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	pf := cmd.Root().PersistentFlags()
	var opts globalOptions

	colorFlag, err := pf.GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	if opts.color, err = colorEnabled(colorFlag, os.Stdout); err != nil {
		return opts, err
	}
	if opts.quiet, err = pf.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = pf.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.driver.MaxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	featuresPath, err := pf.GetString("features")
	if err != nil {
		return opts, fmt.Errorf("failed to get features flag: %w", err)
	}
	if featuresPath != "" {
		feats, err := config.Load(featuresPath)
		if err != nil {
			return opts, fmt.Errorf("failed to load features: %w", err)
		}
		opts.driver.Features = &feats
	}
	return opts, nil
}
