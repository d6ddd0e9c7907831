package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Railly/tinte-sub004/internal/color"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the compiled-in providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tinte %s\ncommit: %s\nbuilt: %s\n", version, commit, date)

			notations := make([]string, 0, len(color.Notations()))
			for _, n := range color.Notations() {
				notations = append(notations, string(n))
			}
			fmt.Fprintf(out, "notations: %s\n", strings.Join(notations, ", "))

			if root.app != nil {
				ids := root.app.Registry.IDs()
				fmt.Fprintf(out, "providers: %d (%s)\n", len(ids), strings.Join(ids, ", "))
			}
			return nil
		},
	}

	return cmd
}
