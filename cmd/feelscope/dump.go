package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feelscope/internal/diag"
	"feelscope/internal/driver"
	"feelscope/internal/symbols"
)

func newDumpCmd() *cobra.Command {
	var withPrelude bool
	cmd := &cobra.Command{
		Use:   "dump <scenario>",
		Short: "Print the scope tree a scenario produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := readGlobalOptions(cmd)
			if err != nil {
				return err
			}
			res, err := driver.CheckFile(cmd.Context(), args[0], global.driver)
			if err != nil {
				return err
			}
			if res.Bag.Len() > 0 {
				res.Bag.Sort()
				fmt.Fprint(cmd.ErrOrStderr(), diag.FormatShort(res.Bag.Items(), res.Files))
			}
			if res.Table == nil {
				return errProblemsFound
			}
			return res.Table.Dump(cmd.OutOrStdout(), symbols.DumpOptions{SkipPrelude: !withPrelude})
		},
	}
	cmd.Flags().BoolVar(&withPrelude, "prelude", false, "include builtin names of the global scope")
	return cmd
}
