package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/codr1/designtokens/internal/palette"
)

func newGroupsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List, create and delete color groups",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List color groups in creation order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
					groups, err := svc.ListGroups(ctx)
					if err != nil {
						return err
					}
					printGroups(cmd.OutOrStdout(), groups)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a color group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
					group, err := svc.CreateGroup(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), group.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>...",
			Short: "Delete color groups and their colors",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseGroupIDs(args)
				if err != nil {
					return err
				}
				return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
					if err := svc.DeleteGroups(ctx, ids); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "deleted %d group(s)\n", len(ids))
					return nil
				})
			},
		},
	)
	return cmd
}

func parseGroupIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(args))
	for i, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid group id %q: %w", arg, err)
		}
		ids[i] = id
	}
	return ids, nil
}
