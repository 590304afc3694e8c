package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codr1/designtokens/internal/models"
	"github.com/codr1/designtokens/internal/navigation"
	"github.com/codr1/designtokens/internal/palette"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Walk the catalog, groups and colors interactively",
		Long: `Browse reads one command per line from stdin:

  <n>       open item n of the current list
  back, b   return to the previous list without reloading it
  refresh   reload the current list
  quit, q   exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd, func(ctx context.Context, svc *palette.Service) error {
				return browse(ctx, navigation.New(svc), cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
}

func browse(ctx context.Context, nav *navigation.Navigator, in io.Reader, out io.Writer) error {
	printFrame(out, nav.Current())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", nav.Current().Level)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		var (
			frame navigation.Frame
			err   error
		)
		switch line {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "b", "back":
			frame = nav.Back()
		case "r", "refresh":
			frame, err = nav.Refresh(ctx)
		default:
			frame, err = open(ctx, nav, line)
		}
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render(err.Error()))
			continue
		}
		printFrame(out, frame)
	}
}

func open(ctx context.Context, nav *navigation.Navigator, arg string) (navigation.Frame, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return navigation.Frame{}, fmt.Errorf("unknown command %q", arg)
	}

	current := nav.Current()
	switch current.Level {
	case navigation.LevelCatalog:
		return nav.SelectCategory(ctx, index)
	case navigation.LevelGroupList:
		if index < 0 || index >= len(current.Groups) {
			return navigation.Frame{}, fmt.Errorf("no group %d", index)
		}
		return nav.SelectGroup(ctx, current.Groups[index].ID)
	default:
		return navigation.Frame{}, fmt.Errorf("%w: nothing to open in %s", navigation.ErrInvalidTransition, current.Level)
	}
}

func printFrame(out io.Writer, frame navigation.Frame) {
	switch frame.Level {
	case navigation.LevelCatalog:
		fmt.Fprintln(out, headerStyle.Render("Design Tokens"))
		printCategories(out, frame.Categories)
	case navigation.LevelGroupList:
		fmt.Fprintln(out, headerStyle.Render(frame.Category.Name))
		if len(frame.Groups) == 0 {
			fmt.Fprintln(out, dimStyle.Render("no color groups"))
		}
		for i, group := range frame.Groups {
			fmt.Fprintf(out, "%d  %s\n", i, group.Name)
		}
	case navigation.LevelEntryList:
		fmt.Fprintln(out, headerStyle.Render(frame.Category.Name+" / "+frame.Group.Name))
		printSwatches(out, models.NewSwatches(frame.Entries))
	}
}
