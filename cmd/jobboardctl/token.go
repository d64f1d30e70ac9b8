package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/jobboard/internal"
	"github.com/DukeRupert/jobboard/internal/auth"
	"github.com/DukeRupert/jobboard/internal/domain"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint identity tokens for local testing",
}

var (
	tokenSubject string
	tokenEmail   string
	tokenName    string
	tokenTTL     time.Duration
)

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Sign a token with IDENTITY_TOKEN_SECRET",
	Long: `Sign an identity token the server will accept.

Only available with ENV=development; production tokens come from the
identity provider.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.NewConfig()
		if err != nil {
			return err
		}
		if !cfg.IsDevelopment() {
			return fmt.Errorf("token issue is only available in development (ENV=%s)", cfg.Env)
		}

		verifier, err := auth.NewVerifier(auth.VerifierConfig{
			Secret:   cfg.IdentityTokenSecret,
			Issuer:   cfg.IdentityIssuer,
			Audience: cfg.IdentityAudience,
		})
		if err != nil {
			return err
		}

		token, err := verifier.Issue(domain.Identity{
			Subject:     tokenSubject,
			Email:       tokenEmail,
			DisplayName: tokenName,
			Verified:    true,
		}, time.Now(), tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().StringVar(&tokenSubject, "sub", "", "Identity subject (user id)")
	tokenIssueCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim")
	tokenIssueCmd.Flags().StringVar(&tokenName, "name", "", "Display name claim")
	tokenIssueCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	_ = tokenIssueCmd.MarkFlagRequired("sub")

	tokenCmd.AddCommand(tokenIssueCmd)
}
