package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

func newStrengthCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate the strength of a password",
		Long: `Rate a password as Weak, Medium or Strong. Without an argument the
password is read from the first line of standard input, which keeps it out
of shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("reading password: %w", err)
				}
				pw = strings.TrimRight(line, "\r\n")
			}

			svc := service.NewGeneratorService(service.GeneratorOptions{})
			resp, err := svc.Evaluate(model.StrengthRequest{Password: pw})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			var present []string
			for _, c := range []struct {
				name string
				has  bool
			}{
				{"uppercase", resp.Classes.Uppercase},
				{"lowercase", resp.Classes.Lowercase},
				{"digit", resp.Classes.Digit},
				{"symbol", resp.Classes.Symbol},
			} {
				if c.has {
					present = append(present, c.name)
				}
			}

			fmt.Fprintf(out, "Strength:    %s\n", resp.Label)
			fmt.Fprintf(out, "Length:      %d (score %d)\n", resp.Length, resp.LengthScore)
			fmt.Fprintf(out, "Classes:     %s (score %d)\n", strings.Join(present, ", "), resp.Diversity)
			fmt.Fprintf(out, "Total score: %d\n", resp.TotalScore)
			fmt.Fprintf(out, "Estimate:    %d/4, %.1f bits, cracked in %s\n",
				resp.Estimate.Score, resp.Estimate.EntropyBits, resp.Estimate.CrackTime)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full breakdown as JSON")
	return cmd
}
