package cli

import (
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/tui"
)

func newUICmd() *cobra.Command {
	var (
		classes classFlags
		length  int
	)

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal generator",
		Long: `Open the interactive generator.

Keys:
  ←/→        shorten or lengthen the password
  1 2 3 4    toggle uppercase, lowercase, digits, symbols
  space, g   generate a new password
  c          copy the password to the clipboard
  q          quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := classes.selection()
			if err != nil {
				return err
			}
			return tui.Run(tui.Options{Length: length, Selection: sel})
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", tui.DefaultSliderLength, "Initial password length")
	classes.register(cmd)
	return cmd
}
