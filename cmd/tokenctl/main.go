// cmd/tokenctl/main.go
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codr1/designtokens/internal/config"
	"github.com/codr1/designtokens/internal/palette"
	"github.com/codr1/designtokens/internal/store/backend"
)

type rootOptions struct {
	configPath string
	database   string
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tokenctl",
		Short:         "Manage design token color groups from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
		Long: `tokenctl reads and edits the same color groups the design tokens server
serves. It uses the server's config.yaml to pick the store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd, opts.verbose)

			cfg, err := config.LoadOrDefault(opts.configPath)
			if err != nil {
				return err
			}
			if opts.database != "" {
				cfg.Database.Driver = config.DriverSQLite
				cfg.Database.Filename = opts.database
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", envOr("CONFIG_PATH", "config.yaml"), "path to config.yaml")
	cmd.PersistentFlags().StringVar(&opts.database, "database", "", "SQLite database file (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newDecodeCmd(),
		newCatalogCmd(),
		newGroupsCmd(opts),
		newColorsCmd(opts),
		newMigrateCmd(opts),
		newBrowseCmd(opts),
	)
	return cmd
}

// withService opens the configured store for the duration of fn.
func (o *rootOptions) withService(cmd *cobra.Command, fn func(ctx context.Context, svc *palette.Service) error) error {
	ctx := log.Logger.WithContext(cmd.Context())

	tokenStore, err := backend.Open(ctx, o.cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := tokenStore.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close store")
		}
	}()

	return fn(ctx, palette.NewService(tokenStore))
}

func setupLogger(cmd *cobra.Command, verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}
