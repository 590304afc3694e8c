package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codr1/designtokens/internal/config"
	"github.com/codr1/designtokens/internal/db"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|version>",
		Short:     "Run the embedded SQLite migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.Database.Driver != config.DriverSQLite {
				return fmt.Errorf("migrate requires the sqlite driver, config uses %q", opts.cfg.Database.Driver)
			}

			status, err := db.Migrate(opts.cfg.Database.Filename, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", status.Version, status.Dirty)
			return nil
		},
	}
}
