package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/perpshield/hedger/amount"
	"github.com/perpshield/hedger/pkg/id"
	"github.com/perpshield/hedger/position"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Price a hedge and record it as a pending position",
	Long: `Compute the hedge quote and write a pending position to the ledger.
The position stays pending until the opening short order is observed
filled.

Example:
  hedger open -m SOL-PERP -t '$1000' -q 10`,
	RunE: runOpen,
}

var openSubAccount int

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringVarP(&quoteMarket, "market", "m", "", "market symbol (required)")
	openCmd.Flags().StringVarP(&quoteTarget, "target", "t", "", "protected value, e.g. '$1000' (required)")
	openCmd.Flags().StringVarP(&quoteQuantity, "quantity", "q", "", "holding quantity in units (required)")
	openCmd.Flags().IntVar(&openSubAccount, "sub-account", 0, "sub-account id to open under")
	openCmd.MarkFlagRequired("market")
	openCmd.MarkFlagRequired("target")
	openCmd.MarkFlagRequired("quantity")
}

func runOpen(cmd *cobra.Command, args []string) error {
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
	if snap.Collateral == 0 || snap.StrikePrice == 0 {
		return fmt.Errorf("incomplete inputs: target %q, quantity %q", quoteTarget, quoteQuantity)
	}

	ledger, err := openLedger(cfg)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer ledger.Close()

	now := time.Now().UTC()
	p := position.Position{
		ID:           id.New(),
		MarketIndex:  mc.MarketIndex,
		SizeScaled:   amount.ToScaledInteger(quoteQuantity, amount.BaseDecimals),
		StrikePrice:  snap.StrikePrice,
		OpenOrderID:  id.New(),
		Status:       position.StatusPending,
		SubAccountID: openSubAccount,
		OpenedAt:     now,
		UpdatedAt:    now,
	}
	if err := ledger.Open(cmd.Context(), p); err != nil {
		return fmt.Errorf("record position: %w", err)
	}

	fmt.Printf("Opened pending position %s on %s\n", p.ID, mc.Symbol)
	fmt.Printf("  Size:              %s\n", amount.FormatAmount(p.SizeScaled, amount.BaseDecimals, 4))
	fmt.Printf("  Strike price:      $%.2f\n", snap.StrikePrice)
	fmt.Printf("  Collateral:        $%.2f\n", snap.Collateral)
	fmt.Printf("  Stop-loss price:   $%.2f\n", snap.StopLossPrice)
	fmt.Printf("  Liquidation price: %s\n", snap.LiquidationPrice)
	return nil
}
