package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perpshield/hedger/hedge"
	"github.com/perpshield/hedger/market"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a hedge for a holding and protection target",
	Long: `Compute the full hedge quote for a market: leverage, collateral,
strike price, stop-loss, liquidation price and taker fee.

Example:
  hedger quote -m SOL-PERP -t '$1000' -q 10 --worth 1500`,
	RunE: runQuote,
}

var (
	quoteMarket   string
	quoteTarget   string
	quoteQuantity string
	quoteWorth    float64
)

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVarP(&quoteMarket, "market", "m", "", "market symbol (required)")
	quoteCmd.Flags().StringVarP(&quoteTarget, "target", "t", "", "protected value, e.g. '$1000' (required)")
	quoteCmd.Flags().StringVarP(&quoteQuantity, "quantity", "q", "", "holding quantity in units (required)")
	quoteCmd.Flags().Float64Var(&quoteWorth, "worth", 0, "estimated holding worth for coverage display")
	quoteCmd.MarkFlagRequired("market")
	quoteCmd.MarkFlagRequired("target")
	quoteCmd.MarkFlagRequired("quantity")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mc, ok := cfg.Market(quoteMarket)
	if !ok {
		return fmt.Errorf("unknown market: %s", quoteMarket)
	}
	params := mc.Perp().Margin
	tier := cfg.Fees.Tier()

	snap := computeSnapshot(params, tier)

	fmt.Printf("Hedge quote for %s\n", mc.Symbol)
	fmt.Printf("  Leverage:          %s\n", snap.Leverage)
	fmt.Printf("  Collateral:        $%.2f\n", snap.Collateral)
	fmt.Printf("  Strike price:      $%.2f\n", snap.StrikePrice)
	fmt.Printf("  Stop-loss price:   $%.2f\n", snap.StopLossPrice)
	fmt.Printf("  Liquidation price: %s\n", snap.LiquidationPrice)
	fmt.Printf("  Taker fee:         %s\n", snap.TxFee)
	if quoteWorth > 0 {
		fmt.Printf("  Coverage:          %s%%\n", hedge.CalculateCoverage(quoteTarget, quoteWorth))
	}
	return nil
}

func computeSnapshot(params market.MarginParams, tier market.FeeTier) hedge.Snapshot {
	return hedge.ComputeSnapshot(&params, quoteTarget, quoteQuantity, &tier)
}
