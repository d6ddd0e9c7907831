package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Railly/tinte-sub004/internal/provider"
)

type providersOptions struct {
	json bool
}

func newProvidersCmd(root *rootFlags) *cobra.Command {
	opts := &providersOptions{}

	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"ls"},
		Short:   "List the registered output providers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := root.app.Registry.List()
			if opts.json {
				return renderProvidersJSON(cmd, list)
			}
			return renderProvidersTable(cmd, list)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

func renderProvidersTable(cmd *cobra.Command, list []provider.Metadata) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tFORMAT\tSTYLE\tVERSION")
	for _, m := range list {
		style := "-"
		if m.Style {
			style = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			m.Name,
			m.Category,
			m.Artifact.Extension,
			style,
			m.Version,
		)
	}

	return writer.Flush()
}

type providersJSONPayload struct {
	Version   string              `json:"version"`
	Count     int                 `json:"count"`
	Providers []provider.Metadata `json:"providers"`
}

func renderProvidersJSON(cmd *cobra.Command, list []provider.Metadata) error {
	payload := providersJSONPayload{
		Version:   "1.0",
		Count:     len(list),
		Providers: list,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
