package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perpshield/hedger/amount"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List recorded positions",
	Args:  cobra.NoArgs,
	RunE:  runPositions,
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}

func runPositions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ledger, err := openLedger(cfg)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer ledger.Close()

	positions, err := ledger.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list positions: %w", err)
	}
	if len(positions) == 0 {
		fmt.Println("No positions recorded.")
		return nil
	}

	fmt.Printf("%-26s  %-7s  %-12s  %-10s  %s\n", "ID", "MARKET", "SIZE", "STRIKE", "STATUS")
	for _, p := range positions {
		fmt.Printf("%-26s  %-7d  %-12s  $%-9.2f  %s\n",
			p.ID, p.MarketIndex,
			amount.FormatAmount(p.SizeScaled, amount.BaseDecimals, 4),
			p.StrikePrice, p.Status)
	}
	return nil
}
