package main

import (
	"encoding/json"

	"logixy_crm/internal/logger"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print a rate recommendation for a route as JSON",
	Long: `Runs the configured rate provider for one route and prints the
observations plus the recommendation summary.

Examples:
  rates --from Shanghai --to Odesa --type 40HC`,
	RunE: runRates,
}

func init() {
	f := ratesCmd.Flags()
	f.String("from", "", "origin port or city")
	f.String("to", "", "destination port or city")
	f.String("type", "", "container kind: 20', 40', 40HC or Tent")
	_ = ratesCmd.MarkFlagRequired("from")
	_ = ratesCmd.MarkFlagRequired("to")
	_ = ratesCmd.MarkFlagRequired("type")
}

func runRates(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	kind, _ := cmd.Flags().GetString("type")

	conn, repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	services, err := buildServices(repos, logger.Nop())
	if err != nil {
		return err
	}
	rec, err := services.SearchRates(cmd.Context(), from, to, kind)
	if err != nil {
		return eris.Wrap(err, "search rates")
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
