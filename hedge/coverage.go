// Package hedge prices a synthetic portfolio-insurance position: a
// leveraged perp short sized so a holding's dollar value is protected
// below a user-chosen threshold. Every function is pure and synchronous,
// reads only its arguments, and degrades to zero results on missing or
// half-typed input rather than erroring.
package hedge

import (
	"math"
	"strconv"

	"github.com/perpshield/hedger/money"
)

// CalculateCoverage returns the percentage of the holding's estimated
// worth that protectedValue covers, as an integer-valued string.
// Unparsable input, zero worth, or a protected value above the worth all
// yield "0".
func CalculateCoverage(protectedValue string, estimatedWorth float64) string {
	v, ok := money.ParseUSDFloat(protectedValue)
	if !ok || estimatedWorth == 0 || v > estimatedWorth {
		return "0"
	}
	pct := v / estimatedWorth * 100
	return strconv.Itoa(int(math.Floor(pct + 0.5)))
}
