package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/router"
	"dogs-registry/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load breeds, countries and hobbies into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.cfg.RequireDatabase(); err != nil {
				return err
			}
			if err := a.openDB(cmd.Context()); err != nil {
				return err
			}
			a.openRedis(cmd.Context())

			if file == "" {
				file = a.cfg.Seed.File
			}
			f, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			opts, err := a.routerOptions()
			if err != nil {
				return err
			}
			res, err := seed.Apply(cmd.Context(), router.NewServices(opts).Catalog, f, a.log)
			if err != nil {
				return err
			}

			for _, kind := range catalog.Kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s created=%d skipped=%d\n", kind, res.Created[kind], res.Skipped[kind])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixtures (default: embedded)")
	return cmd
}
