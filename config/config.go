// Package config loads hedger configuration from a YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/perpshield/hedger/market"
)

// Config is the complete hedger configuration.
type Config struct {
	Markets []MarketConfig `json:"markets" yaml:"markets"`
	Fees    FeeConfig      `json:"fees" yaml:"fees"`
	Feed    FeedConfig     `json:"feed" yaml:"feed"`
	Ledger  LedgerConfig   `json:"ledger" yaml:"ledger"`
}

// MarketConfig describes one perp market the engine may hedge on.
type MarketConfig struct {
	Symbol               string `json:"symbol" yaml:"symbol"`
	MarketIndex          int    `json:"market_index" yaml:"market_index"`
	InitialMarginBps     int    `json:"initial_margin_bps" yaml:"initial_margin_bps"`
	MaintenanceMarginBps int    `json:"maintenance_margin_bps" yaml:"maintenance_margin_bps"`
	BaseDecimals         int    `json:"base_decimals" yaml:"base_decimals"`
	QuoteDecimals        int    `json:"quote_decimals" yaml:"quote_decimals"`
}

// Perp converts the entry to the market value type.
func (m MarketConfig) Perp() market.Perp {
	return market.Perp{
		Symbol:        m.Symbol,
		MarketIndex:   m.MarketIndex,
		BaseDecimals:  m.BaseDecimals,
		QuoteDecimals: m.QuoteDecimals,
		Margin: market.MarginParams{
			InitialMarginBps:     m.InitialMarginBps,
			MaintenanceMarginBps: m.MaintenanceMarginBps,
		},
	}
}

// FeeConfig is the taker fee tier applied to hedge entries.
type FeeConfig struct {
	Numerator   int64 `json:"numerator" yaml:"numerator"`
	Denominator int64 `json:"denominator" yaml:"denominator"`
}

func (f FeeConfig) Tier() market.FeeTier {
	return market.FeeTier{FeeNumerator: f.Numerator, FeeDenominator: f.Denominator}
}

// FeedConfig points at the push-price feed.
type FeedConfig struct {
	URL        string `json:"url" yaml:"url"`
	StaleAfter string `json:"stale_after,omitempty" yaml:"stale_after,omitempty"` // e.g. "30s"
}

// ParseStaleAfter converts the staleness bound to a duration; empty
// means no bound.
func (f FeedConfig) ParseStaleAfter() (time.Duration, error) {
	if f.StaleAfter == "" {
		return 0, nil
	}
	return time.ParseDuration(f.StaleAfter)
}

// LedgerConfig selects the position ledger backend.
type LedgerConfig struct {
	Type   string `json:"type" yaml:"type"` // "memory" or "sqlite"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration; YAML for .yaml/.yml, JSON
// otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Markets) == 0 {
		return fmt.Errorf("at least one market is required")
	}
	seen := make(map[string]bool, len(c.Markets))
	for _, m := range c.Markets {
		if err := m.Perp().Validate(); err != nil {
			return err
		}
		if seen[m.Symbol] {
			return fmt.Errorf("duplicate market symbol %s", m.Symbol)
		}
		seen[m.Symbol] = true
	}
	if err := c.Fees.Tier().Validate(); err != nil {
		return fmt.Errorf("fees: %w", err)
	}
	if _, err := c.Feed.ParseStaleAfter(); err != nil {
		return fmt.Errorf("feed.stale_after: %w", err)
	}
	switch c.Ledger.Type {
	case "memory":
	case "sqlite":
		if c.Ledger.DBPath == "" {
			return fmt.Errorf("ledger.db_path required for sqlite ledger")
		}
	default:
		return fmt.Errorf("ledger.type must be 'memory' or 'sqlite'")
	}
	return nil
}

// Market returns the configured market for symbol.
func (c *Config) Market(symbol string) (MarketConfig, bool) {
	for _, m := range c.Markets {
		if m.Symbol == symbol {
			return m, true
		}
	}
	return MarketConfig{}, false
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Markets: []MarketConfig{
			{
				Symbol:               "SOL-PERP",
				MarketIndex:          0,
				InitialMarginBps:     1000,
				MaintenanceMarginBps: 500,
				BaseDecimals:         9,
				QuoteDecimals:        6,
			},
		},
		Fees: FeeConfig{Numerator: 1, Denominator: 1000},
		Feed: FeedConfig{
			URL:        "wss://hermes.pyth.network/ws",
			StaleAfter: "30s",
		},
		Ledger: LedgerConfig{Type: "memory"},
	}
}
