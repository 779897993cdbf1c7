package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [command] [args...]",
	Short: "Run database migrations (up, down, status, redo, version, ...)",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command, args = args[0], args[1:]
		}

		db, err := openDB(cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := migrate.Run(cmd.Context(), db.Master, command, args...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		zlog.Logger.Info().Str("command", command).Msg("migrations done")

		return nil
	},
}
