package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codr1/designtokens/internal/hexcolor"
	"github.com/codr1/designtokens/internal/models"
)

func newDecodeCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Show how hex strings decode to colors",
		Long: `Decode prints the color each argument renders as. By default the lenient
decoder is used, which never fails; with --strict only 6 or 8 digit hex is
accepted and anything else is an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if strict {
					if _, err := hexcolor.DecodeStrict(arg); err != nil {
						return err
					}
				}
				swatch := models.NewSwatch(models.ColorEntry{Value: arg})
				fmt.Fprintf(out, "%-12q %s %s\n", arg, swatchBlock(swatch, swatch.Hex), swatch.CSS)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject input that is not 6 or 8 hex digits")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the design token categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printCategories(cmd.OutOrStdout(), models.Catalog())
			return nil
		},
	}
}
