package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codr1/designtokens/internal/models"
	"github.com/codr1/designtokens/internal/palette"
)

func newColorsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List and edit the colors in a group",
	}

	cmd.AddCommand(
		newColorsListCmd(opts),
		newColorsAddCmd(opts),
		newColorsImportCmd(opts),
		newColorsRemoveCmd(opts),
		newColorsMoveCmd(opts),
	)
	return cmd
}

func newColorsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <group-id>",
		Short: "List a group's colors in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseGroupIDs(args)
			if err != nil {
				return err
			}
			return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
				entries, err := svc.ListColors(ctx, ids[0])
				if err != nil {
					return err
				}
				printSwatches(cmd.OutOrStdout(), models.NewSwatches(entries))
				return nil
			})
		},
	}
}

func newColorsAddCmd(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <group-id> <hex>",
		Short: "Append a color given as #RRGGBB or #RRGGBBAA",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseGroupIDs(args[:1])
			if err != nil {
				return err
			}
			return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
				entry, err := svc.AddColor(ctx, ids[0], name, args[1])
				if err != nil {
					return err
				}
				printSwatches(cmd.OutOrStdout(), []models.Swatch{models.NewSwatch(entry)})
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "color name")
	return cmd
}

func newColorsImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <group-id> [file]",
		Short: "Append colors from a JSON payload",
		Long: `Import reads a JSON array of {"value": "...", "name": "..."} objects, or an
object mapping names to such items, from file or stdin ("-" or omitted).
A payload that cannot be parsed adds nothing.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseGroupIDs(args[:1])
			if err != nil {
				return err
			}
			payload, err := readPayload(cmd, args[1:])
			if err != nil {
				return err
			}
			return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
				entries, err := svc.ImportColors(ctx, ids[0], payload)
				if err != nil {
					var parseErr *palette.ParseError
					if errors.As(err, &parseErr) {
						fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("nothing imported"))
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d color(s)\n", len(entries))
				printSwatches(cmd.OutOrStdout(), models.NewSwatches(entries))
				return nil
			})
		},
	}
}

func newColorsRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <group-id> <position>...",
		Short: "Remove the colors at the given positions",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseGroupIDs(args[:1])
			if err != nil {
				return err
			}
			positions, err := parsePositions(args[1:])
			if err != nil {
				return err
			}
			return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
				entries, err := svc.RemoveColors(ctx, ids[0], positions)
				if err != nil {
					return err
				}
				printSwatches(cmd.OutOrStdout(), models.NewSwatches(entries))
				return nil
			})
		},
	}
}

func newColorsMoveCmd(opts *rootOptions) *cobra.Command {
	var to int

	cmd := &cobra.Command{
		Use:   "move <group-id> <position>... --to <position>",
		Short: "Move colors so they sit before the color currently at --to",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseGroupIDs(args[:1])
			if err != nil {
				return err
			}
			from, err := parsePositions(args[1:])
			if err != nil {
				return err
			}
			return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
				entries, err := svc.MoveColors(ctx, ids[0], from, to)
				if err != nil {
					return fmt.Errorf("move %s to %d: %w", joinInts(from), to, err)
				}
				printSwatches(cmd.OutOrStdout(), models.NewSwatches(entries))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&to, "to", 0, "destination position; the number of colors moves to the end")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func parsePositions(args []string) ([]int, error) {
	positions := make([]int, len(args))
	for i, arg := range args {
		position, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q", arg)
		}
		positions[i] = position
	}
	return positions, nil
}

func readPayload(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read import file: %w", err)
	}
	return string(data), nil
}
