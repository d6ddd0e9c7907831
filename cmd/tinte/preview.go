package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
	"github.com/Railly/tinte-sub004/internal/tui"
)

var errNotTerminal = errors.New("standard output is not a terminal")

type previewOptions struct {
	mode        string
	overrides   string
	interactive bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <theme>",
		Short: "Show palette swatches and contrast, or browse providers interactively",
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
			if err := theme.Validate(th); err != nil {
				return newCommandError("preview theme", args[0], err, "Run 'tinte validate' to list every issue.")
			}

			if !opts.interactive {
				fmt.Fprintln(cmd.OutOrStdout(), tui.Preview(th, modes))
				return nil
			}

			if !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("start interactive preview", args[0], errNotTerminal, "Run without --interactive to print a static preview.")
			}
			layer, err := loadOverrides(opts.overrides)
			if err != nil {
				return err
			}

			app := root.app
			resolve := func(id string) (tokens.Modes, error) {
				return app.Compiler.Resolve(compiler.Request{Theme: th, ProviderID: id, Overrides: layer})
			}
			model := tui.NewModel(th, app.Registry.IDs(), resolve, modes[0])
			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())).Run(); err != nil {
				return newCommandError("run interactive preview", args[0], err, "Check that the terminal supports full-screen applications.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Only show one mode (light|dark)")
	cmd.Flags().StringVarP(&opts.overrides, "overrides", "o", "", "Override file applied in the interactive browser")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse every provider's tokens in a full-screen view")

	return cmd
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
