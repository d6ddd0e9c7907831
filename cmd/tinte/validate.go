package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Railly/tinte-sub004/internal/theme"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <theme>",
		Short: "Check that a theme defines every slot with a parseable color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			th, err := loadTheme(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := theme.Validate(th); err != nil {
				var themeErr *tinteerrors.InvalidThemeError
				if errors.As(err, &themeErr) {
					for _, issue := range themeErr.Issues {
						fmt.Fprintf(out, "  x %s\n", issue)
					}
				}
				root.app.Logger.With("theme", path).Debug("theme rejected")
				return newCommandError("validate theme", path, err, "Every slot needs a hex, rgb(), hsl() or oklch() color in both light and dark.")
			}

			fmt.Fprintf(out, "%s is valid: %d slots in %d modes\n", th.DisplayName(), len(theme.Slots()), len(theme.Modes()))
			return nil
		},
	}

	return cmd
}
