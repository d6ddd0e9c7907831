package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

type tokensOptions struct {
	providerID string
	overrides  string
	mode       string
	json       bool
}

func newTokensCmd(root *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens <theme>",
		Short: "Print a provider's final token map without serializing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes, err := selectModes(opts.mode)
			if err != nil {
				return err
			}

			th, err := loadTheme(args[0])
			if err != nil {
				return err
			}
			layer, err := loadOverrides(opts.overrides)
			if err != nil {
				return err
			}

			id := root.providerOr(opts.providerID)
			resolved, err := root.app.Compiler.Resolve(compiler.Request{Theme: th, ProviderID: id, Overrides: layer})
			if err != nil {
				return newCommandError("resolve tokens", fmt.Sprintf("%s for provider %q", args[0], id), err, "Run 'tinte providers' to list provider ids and 'tinte validate' to check the theme.")
			}

			if opts.json {
				return renderTokensJSON(cmd, resolved, modes)
			}
			return renderTokensTable(cmd, resolved, modes)
		},
	}

	cmd.Flags().StringVarP(&opts.providerID, "provider", "p", "", "Provider id (default from config, else shadcn)")
	cmd.Flags().StringVarP(&opts.overrides, "overrides", "o", "", "Override file applied on top of the theme")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Only print one mode (light|dark)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

func selectModes(raw string) ([]theme.Mode, error) {
	switch theme.Mode(raw) {
	case "":
		return theme.Modes(), nil
	case theme.Light, theme.Dark:
		return []theme.Mode{theme.Mode(raw)}, nil
	default:
		return nil, newCommandError("select mode", fmt.Sprintf("%q", raw), fmt.Errorf("unknown mode %q", raw), "Use --mode light or --mode dark.")
	}
}

func renderTokensTable(cmd *cobra.Command, resolved tokens.Modes, modes []theme.Mode) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	for i, mode := range modes {
		if i > 0 {
			fmt.Fprintln(writer)
		}
		fmt.Fprintf(writer, "# %s\n", mode)
		m := resolved.Get(string(mode))
		for _, name := range m.Keys() {
			fmt.Fprintf(writer, "%s\t%s\n", name, m[name])
		}
	}

	return writer.Flush()
}

func renderTokensJSON(cmd *cobra.Command, resolved tokens.Modes, modes []theme.Mode) error {
	payload := make(map[string]tokens.Map, len(modes))
	for _, mode := range modes {
		payload[string(mode)] = resolved.Get(string(mode))
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
