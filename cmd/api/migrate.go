package main

import (
	"github.com/spf13/cobra"

	pg "dogs-registry/internal/adapters/storage/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if err := a.cfg.RequireDatabase(); err != nil {
				return err
			}
			return pg.Migrate(cmd.Context(), a.cfg.Database.DSN, a.log)
		},
	}
}
