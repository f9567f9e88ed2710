package main

import (
	"fmt"
	"time"

	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/core/domain/model/identity"

	"github.com/spf13/cobra"
)

func newTokenCommand(ctx *commandContext) *cobra.Command {
	var (
		role  string
		name  string
		login string
		ttl   time.Duration
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			parsed, err := identity.ParseRole(role)
			if err != nil {
				return err
			}
			if _, err := identity.NewIdentity(parsed, name, login); err != nil {
				return err
			}

			auth, err := httpadapter.NewAuthenticator(cfg.JWTSecret)
			if err != nil {
				return err
			}
			token, err := auth.Issue(parsed, name, login, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	tokenCmd.Flags().StringVar(&role, "role", string(identity.Technician), "Role claim (admin or technician)")
	tokenCmd.Flags().StringVar(&name, "name", "", "Display name claim")
	tokenCmd.Flags().StringVar(&login, "login", "", "Username claim")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "Token lifetime")

	return tokenCmd
}
