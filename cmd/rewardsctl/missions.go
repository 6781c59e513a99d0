package main

import (
	"context"
	"fmt"

	"rewards/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newMissionsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "Mission maintenance",
	}

	var user string

	rearm := &cobra.Command{
		Use:   "rearm <mission-id>",
		Short: "Clear a user's completion so the mission can complete again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			missionID, err := parseUUIDArg("mission-id", args[0])
			if err != nil {
				return err
			}

			userID, err := parseUUIDArg("user", user)
			if err != nil {
				return err
			}

			var missions usecase.MissionUsecase

			return runApp(cmd.Context(), opts.Timeout, func(ctx context.Context) error {
				if err := missions.Rearm(ctx, userID, missionID); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "mission %s re-armed for user %s\n", missionID, userID)

				return nil
			}, infraOptions(), usecaseOptions(), fx.Populate(&missions))
		},
	}
	rearm.Flags().StringVar(&user, "user", "", "user whose progress is re-armed")
	_ = rearm.MarkFlagRequired("user")

	cmd.AddCommand(rearm)

	return cmd
}
