// Package cli implements the passgen command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/password"
)

// NewRootCmd builds the passgen command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords and rate their strength",
		Long: `passgen generates random passwords from selected character classes
(uppercase, lowercase, digits, symbols) and rates password strength.

Examples:
  passgen generate -l 20            # one 20 character password
  passgen generate --only lower,digit -c 5
  passgen strength 'Abcdefgh123!'
  passgen ui                        # interactive terminal UI`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logging.Setup(cmd.ErrOrStderr(), "development", level)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newGenerateCmd(),
		newStrengthCmd(),
		newUICmd(),
		newTokenCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// classFlags binds the per-class switches shared by generate and ui.
type classFlags struct {
	uppercase bool
	lowercase bool
	numbers   bool
	symbols   bool
	only      []string
}

func (f *classFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVarP(&f.uppercase, "uppercase", "u", true, "Include uppercase letters (A-Z)")
	fs.BoolVar(&f.lowercase, "lowercase", true, "Include lowercase letters (a-z)")
	fs.BoolVarP(&f.numbers, "numbers", "n", true, "Include digits (0-9)")
	fs.BoolVarP(&f.symbols, "symbols", "s", true, "Include symbols (!@#$...)")
	fs.StringSliceVar(&f.only, "only", nil, "Use exactly these classes (uppercase,lowercase,digit,symbol)")
	cmd.MarkFlagsMutuallyExclusive("only", "uppercase")
	cmd.MarkFlagsMutuallyExclusive("only", "lowercase")
	cmd.MarkFlagsMutuallyExclusive("only", "numbers")
	cmd.MarkFlagsMutuallyExclusive("only", "symbols")
}

func (f *classFlags) selection() (password.Selection, error) {
	if len(f.only) > 0 {
		var sel password.Selection
		for _, name := range f.only {
			c, err := password.ParseClass(name)
			if err != nil {
				return 0, err
			}
			sel = sel.With(c)
		}
		return sel, nil
	}

	var sel password.Selection
	if f.uppercase {
		sel = sel.With(password.Uppercase)
	}
	if f.lowercase {
		sel = sel.With(password.Lowercase)
	}
	if f.numbers {
		sel = sel.With(password.Digit)
	}
	if f.symbols {
		sel = sel.With(password.Symbol)
	}
	if sel.IsEmpty() {
		return 0, fmt.Errorf("%w: enable at least one of --uppercase, --lowercase, --numbers, --symbols", password.ErrInvalidSelection)
	}
	slog.Debug("class selection", "classes", sel.String())
	return sel, nil
}
