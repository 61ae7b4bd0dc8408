package shared

import "github.com/shopspring/decimal"

// Round returns v rounded half away from zero to places decimal places.
// Every figure the balancing and analysis services report (efficiencies,
// cycle times, line balance) goes through here so rounding behaves the same
// across the module.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// RoundInt rounds v half away from zero to the nearest whole number.
func RoundInt(v float64) int {
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}
