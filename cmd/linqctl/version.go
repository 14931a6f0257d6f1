package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/golinq/version"
)

func newVersionCommand(a *app) *cobra.Command {
	var withModules bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the linqctl build information",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, info.String())
			if !withModules {
				return nil
			}
			for _, m := range info.Modules {
				fmt.Fprintf(out, "  %s %s\n", m.Path, m.Version)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&withModules, "modules", false, "also list the module dependencies")
	return cmd
}
