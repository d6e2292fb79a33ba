package main

import (
	"fmt"

	"logixy_crm/internal/logger"
	"logixy_crm/internal/seed"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo clients and quotations",
	Long: `Loads the embedded demo dataset into the configured database.
Without --force nothing is written when clients already exist.
With --force records are upserted by id.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().Bool("force", false, "upsert the dataset even if the database is not empty")
}

func runSeed(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	log := logger.Get(cfg.Log.Level)

	conn, repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx := cmd.Context()
	var counts seed.Counts
	if force {
		ds, err := seed.Default()
		if err != nil {
			return eris.Wrap(err, "parse demo dataset")
		}
		if counts, err = seed.Load(ctx, ds, repos.Clients, repos.Quotations); err != nil {
			return eris.Wrap(err, "load demo dataset")
		}
	} else {
		var loaded bool
		if counts, loaded, err = seed.LoadIfEmpty(ctx, repos.Clients, repos.Quotations); err != nil {
			return eris.Wrap(err, "load demo dataset")
		}
		if !loaded {
			log.Infow("database already has clients; use --force to upsert", "path", cfg.DB.Path)
			return nil
		}
	}

	log.Infow("demo data loaded", "path", cfg.DB.Path, "clients", counts.Clients, "quotations", counts.Quotations)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "loaded %d clients and %d quotations\n", counts.Clients, counts.Quotations)
	return err
}
