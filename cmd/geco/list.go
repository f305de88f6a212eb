package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geco/catalog"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available variants and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range catalog.Names() {
				v, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				params := make([]string, len(v.Params))
				for i, p := range v.Params {
					params[i] = fmt.Sprintf("%s:%s=%v", p.Name, p.Kind, p.Default)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", v.Name, v.Summary, strings.Join(params, " "))
			}
			return w.Flush()
		},
	}
}
