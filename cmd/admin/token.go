package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"nt-data-lab/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		email  string
		secret string
		expiry time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an identity token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("JWT_SECRET is required")
			}

			token, err := auth.NewJWTManager(secret, expiry).GenerateToken(email)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email the token identifies")
	cmd.Flags().StringVar(&secret, "secret", "", "Signing secret (defaults to JWT_SECRET)")
	cmd.Flags().DurationVar(&expiry, "expiry", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
