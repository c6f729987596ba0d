package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/persistorai/transitroute/internal/db"
	"github.com/persistorai/transitroute/internal/dbpool"
	"github.com/persistorai/transitroute/internal/loader"
	"github.com/persistorai/transitroute/internal/network"
	"github.com/persistorai/transitroute/internal/store"
)

func newImportCmd() *cobra.Command {
	var databaseURL string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the --stops and --routes files into Postgres",
		Long: "Validates the dataset by building the network, applies migrations and replaces\n" +
			"the stored dataset in one transaction. The server reads it with DATA_SOURCE=postgres.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagStops == "" || flagRoutes == "" {
				return errOfflineFlags
			}
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}

			ctx := cmd.Context()
			log := cliLogger()

			ds, err := loader.LoadFiles(ctx, flagStops, flagRoutes)
			if err != nil {
				return err
			}
			n, err := network.Build(ds, log)
			if err != nil {
				return fmt.Errorf("validating dataset: %w", err)
			}

			pool, err := dbpool.NewPool(ctx, databaseURL)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer pool.Close()

			if _, err := db.RunMigrations(ctx, pool, log); err != nil {
				return err
			}
			if err := store.NewDatasetStore(pool, log).Import(ctx, ds); err != nil {
				return err
			}

			fmt.Printf("Imported %d stops, %d segments, %d routes (%d edges)\n",
				n.StopCount(), len(ds.Segments), len(ds.RouteNames), n.EdgeCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (env: DATABASE_URL)")
	return cmd
}
