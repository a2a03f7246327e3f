package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		amount          int64
		decimals        int
		displayDecimals int
		want            string
	}{
		{"whole_and_fraction", 1_234_567, 6, 2, "1.23"},
		{"dust_displays_as_zero", 5, 6, 2, "0.00"},
		{"dust_full_precision", 5, 6, 6, "0.000005"},
		{"display_wider_than_precision", 5, 6, 8, "0.000005"},
		{"negative", -1_234_567, 6, 2, "-1.23"},
		{"zero", 0, 6, 2, "0.00"},
		{"truncates_not_rounds", 1_999_999, 6, 2, "1.99"},
		{"zero_display_decimals", 1_234_567, 6, 0, "1"},
		{"large", 1_000_000_000_000, 6, 2, "1000000.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatAmount(tt.amount, tt.decimals, tt.displayDecimals)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmountNegativeDecimalsPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { FormatAmount(1, -1, 2) })
	assert.Panics(t, func() { FormatAmount(1, 6, -1) })
}

func TestToScaledInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		decimals int
		want     int64
	}{
		{"exact", "123.456789", 6, 123_456_789},
		{"floors_extra_digits", "1.9999999", 6, 1_999_999},
		{"whole", "1000000", 6, 1_000_000_000_000},
		{"zero", "0", 6, 0},
		{"empty", "", 6, 0},
		{"junk", "abc", 6, 0},
		{"negative", "-1.5", 6, -1_500_000},
		{"whitespace", "  2.5  ", 6, 2_500_000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ToScaledInteger(tt.input, tt.decimals)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"0", "0.00"},
		{"0.00", "0.00"},
		{"123.456789", "123.45"},
		{"1000000", "1000000.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := FormatAmount(ToScaledInteger(tt.input, 6), 6, 2)
			assert.Equal(t, tt.want, got)
		})
	}
}
