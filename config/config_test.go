package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())

	stale, err := cfg.Feed.ParseStaleAfter()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, stale)
}

func TestLoadSaveRoundTripYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hedger.yaml")
	cfg := Default()
	cfg.Ledger = LedgerConfig{Type: "sqlite", DBPath: "./positions.db"}

	assert.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hedger.json")
	data := `{
		"markets": [{"symbol": "SOL-PERP", "market_index": 0, "initial_margin_bps": 1000, "maintenance_margin_bps": 500, "base_decimals": 9, "quote_decimals": 6}],
		"fees": {"numerator": 1, "denominator": 1000},
		"feed": {"url": "wss://example.com/ws"},
		"ledger": {"type": "memory"}
	}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "SOL-PERP", got.Markets[0].Symbol)
	assert.Equal(t, int64(1000), got.Fees.Denominator)
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no_markets", func(c *Config) { c.Markets = nil }},
		{"maintenance_above_initial", func(c *Config) { c.Markets[0].MaintenanceMarginBps = 2000 }},
		{"duplicate_symbol", func(c *Config) { c.Markets = append(c.Markets, c.Markets[0]) }},
		{"zero_fee_denominator", func(c *Config) { c.Fees.Denominator = 0 }},
		{"bad_stale_after", func(c *Config) { c.Feed.StaleAfter = "soon" }},
		{"bad_ledger_type", func(c *Config) { c.Ledger.Type = "postgres" }},
		{"sqlite_without_path", func(c *Config) { c.Ledger = LedgerConfig{Type: "sqlite"} }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMarketLookup(t *testing.T) {
	t.Parallel()

	cfg := Default()
	m, ok := cfg.Market("SOL-PERP")
	assert.True(t, ok)
	assert.Equal(t, 1000, m.InitialMarginBps)

	_, ok = cfg.Market("DOGE-PERP")
	assert.False(t, ok)
}
