package main

import (
	"database/sql"
	"os"

	"logixy_crm/internal/config"
	"logixy_crm/internal/logger"
	"logixy_crm/internal/repository"
	"logixy_crm/internal/repository/db"

	_ "logixy_crm/docs"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	configDir string
)

// @title Logixy CRM API
// @version 1.0
// @description Clients, quotations, freight rate recommendations and a live dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
var rootCmd = &cobra.Command{
	Use:           "logixy",
	Short:         "Logistics CRM with freight rate recommendations",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		if configDir != "" {
			paths = append(paths, configDir)
		}
		c, err := config.Load(paths...)
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory containing config.yml")
	rootCmd.AddCommand(serveCmd, ratesCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Get(logger.ErrorLevel).Errorw("command failed", "err", eris.ToString(err, true))
		os.Exit(1)
	}
}

// openRepositories opens the configured SQLite file and wires the repository layer.
func openRepositories() (*sql.DB, *repository.Repository, error) {
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "init sqlite %q", cfg.DB.Path)
	}
	return conn, repository.NewRepository(conn), nil
}
