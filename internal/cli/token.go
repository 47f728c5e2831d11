package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
)

var errNoSecret = errors.New("JWT_SECRET is not set; API authentication is disabled")

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the HTTP API",
		Long: `Mint a bearer token for the HTTP API. The token is signed with
JWT_SECRET, which must match the secret the API server runs with.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return errNoSecret
			}
			if ttl == 0 {
				ttl = cfg.JWTExpiry
			}
			if ttl < 0 {
				return fmt.Errorf("--ttl must be positive")
			}

			token, err := crypto.GenerateToken(subject, cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Client name the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to JWT_EXPIRY)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
