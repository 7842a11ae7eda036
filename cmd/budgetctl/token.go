package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/budgetly/internal/http/auth"
)

func (a *app) tokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an API token for an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Auth.JWTSecret == "" {
				return errors.New("AUTH_JWT_SECRET must be set")
			}

			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}

			ownerID, err := a.ownerID()
			if err != nil {
				return err
			}

			token, err := auth.NewToken([]byte(a.cfg.Auth.JWTSecret), ownerID, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

			return err
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "how long the token stays valid")

	return cmd
}
