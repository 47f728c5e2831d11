package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/password"
)

const maxCount = 1000

func newGenerateCmd() *cobra.Command {
	var (
		classes      classFlags
		length       int
		count        int
		showStrength bool
		seed         string
		weak         bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate one or more passwords",
		Long: `Generate random passwords. Every selected character class is
guaranteed to appear at least once, so the length must be at least the
number of selected classes.

--seed makes the output reproducible: the same phrase and flags always
produce the same passwords. Never use a seeded password for a real secret.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := classes.selection()
			if err != nil {
				return err
			}
			if count < 1 || count > maxCount {
				return fmt.Errorf("--count must be between 1 and %d", maxCount)
			}

			var src password.Source
			switch {
			case seed != "" && weak:
				return fmt.Errorf("--seed and --weak cannot be combined")
			case seed != "":
				src = password.PhraseSource(seed)
			case weak:
				src = password.MathSource()
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				pw, err := password.Generate(length, sel, src)
				if err != nil {
					return err
				}
				if showStrength {
					fmt.Fprintf(out, "%s\t%s\n", pw, password.Score(pw).Label())
					continue
				}
				fmt.Fprintln(out, pw)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&length, "length", "l", 16, "Password length")
	fs.IntVarP(&count, "count", "c", 1, "Number of passwords to generate")
	fs.BoolVar(&showStrength, "strength", false, "Print the strength tier after each password")
	fs.StringVar(&seed, "seed", "", "Derive passwords deterministically from this phrase")
	fs.BoolVar(&weak, "weak", false, "Use the fast non-cryptographic random source")
	classes.register(cmd)

	return cmd
}
