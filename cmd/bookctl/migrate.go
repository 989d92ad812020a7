package main

import (
	"github.com/spf13/cobra"

	"bookspark/db"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|reset]",
	Short:     "Apply or inspect database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status", "reset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		pool, err := a.openDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()
		return db.Migrate(ctx, pool, command)
	},
}
