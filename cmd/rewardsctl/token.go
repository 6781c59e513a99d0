package main

import (
	"fmt"
	"time"

	"rewards/config"
	"rewards/internal/domain/entity"
	"rewards/internal/domain/service"
	"rewards/internal/errors"
	"rewards/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	User  string
	Roles []string
	TTL   time.Duration
}

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access tokens for local development",
	}

	opts := &tokenOptions{}
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign an access token with the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}

			token, err := issueToken(tokens, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}
	issue.Flags().StringVar(&opts.User, "user", "", "subject user id (random when empty)")
	issue.Flags().StringSliceVar(&opts.Roles, "role", []string{string(entity.RoleUser)}, "roles to grant (user, merchant, admin)")
	issue.Flags().DurationVar(&opts.TTL, "ttl", time.Hour, "token lifetime")

	cmd.AddCommand(issue)

	return cmd
}

func issueToken(tokens service.TokenService, opts *tokenOptions) (string, error) {
	userID := uuid.New()
	if opts.User != "" {
		id, err := parseUUIDArg("user", opts.User)
		if err != nil {
			return "", err
		}
		userID = id
	}

	roles := entity.RolesFromStrings(opts.Roles)
	if len(roles) != len(opts.Roles) {
		return "", errors.Errorf("unknown role in %v", opts.Roles)
	}

	if opts.TTL <= 0 {
		return "", errors.New("--ttl must be positive")
	}

	return tokens.GenerateAccessToken(userID, roles.ToStrings(), opts.TTL)
}
