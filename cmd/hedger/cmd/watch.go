package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perpshield/hedger/hedge"
	"github.com/perpshield/hedger/pricefeed"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the price feed and report live coverage",
	Long: `Subscribe to the configured push-price feed and periodically report
the holding's estimated worth and how much of it the protection target
covers. Stops on Ctrl-C.

Example:
  hedger watch -s SOL-PERP -t '$1000' -q 10`,
	RunE: runWatch,
}

var (
	watchSymbol   string
	watchTarget   string
	watchQuantity float64
	watchInterval time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchSymbol, "symbol", "s", "", "feed symbol (required)")
	watchCmd.Flags().StringVarP(&watchTarget, "target", "t", "", "protected value, e.g. '$1000' (required)")
	watchCmd.Flags().Float64VarP(&watchQuantity, "quantity", "q", 0, "holding quantity in units (required)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 5*time.Second, "reporting interval")
	watchCmd.MarkFlagRequired("symbol")
	watchCmd.MarkFlagRequired("target")
	watchCmd.MarkFlagRequired("quantity")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	staleAfter, err := cfg.Feed.ParseStaleAfter()
	if err != nil {
		return fmt.Errorf("feed.stale_after: %w", err)
	}

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	feed, err := pricefeed.NewWS(pricefeed.WSConfig{
		URL:        cfg.Feed.URL,
		Symbols:    []string{watchSymbol},
		StaleAfter: staleAfter,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	feed.Start(ctx)
	defer feed.Close()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			worth, err := pricefeed.EstimatedWorth(ctx, feed, watchSymbol, watchQuantity)
			if err != nil {
				log.Warn("no price yet", zap.String("symbol", watchSymbol), zap.Error(err))
				continue
			}
			coverage := hedge.CalculateCoverage(watchTarget, worth)
			fmt.Printf("%s  worth $%.2f  coverage %s%%\n",
				time.Now().UTC().Format(time.RFC3339), worth, coverage)
		}
	}
}
