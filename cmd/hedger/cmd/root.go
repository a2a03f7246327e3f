package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/perpshield/hedger/config"
	"github.com/perpshield/hedger/position"
)

var rootCmd = &cobra.Command{
	Use:   "hedger",
	Short: "Price and track perp-short portfolio insurance",
	Long: `Hedger prices synthetic portfolio insurance: a leveraged perp short
sized so a token holding's dollar value stays protected below a chosen
threshold.

It provides tools for:
  - Quoting leverage, collateral, strike, stop-loss and liquidation prices
  - Opening and listing protected positions in a local ledger
  - Watching a push-price feed and reporting live coverage`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var cfgPath string

func init() {
	// .env may carry overrides such as the feed URL; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "f", "", "path to config file (YAML or JSON)")
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openLedger(cfg *config.Config) (position.Source, error) {
	switch cfg.Ledger.Type {
	case "sqlite":
		return position.NewSQLite(cfg.Ledger.DBPath)
	default:
		return position.NewMemory(), nil
	}
}
