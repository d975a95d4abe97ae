package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"creative-hub/internal/adapter/postgres"
	"creative-hub/internal/db"
)

func newSeedCommand(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo creatives into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			pool, err := db.NewPostgresPool(cmd.Context(), a.cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), postgres.NewCreativeRepository(pool), count); err != nil {
				return err
			}
			a.logger.Info("seeded creatives", slog.Int("count", count))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", mockCreativeCount, "number of creatives to insert")
	return cmd
}
