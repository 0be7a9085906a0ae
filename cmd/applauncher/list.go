package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newListCmd prints the catalog, optionally filtered, for diagnostics.
func newListCmd(c *cli) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Print the discovered applications",
		Long:  `Scan the application directories and print every loaded entry in launch order. A query filters the list the same way typing does.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			entries := c.buildCatalog().Filter(query)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				if showPath {
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Exec, e.Path)
				} else {
					fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Exec)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&showPath, "path", "p", false, "Show the descriptor file of each entry")

	return cmd
}
