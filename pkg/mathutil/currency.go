// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/fintrack/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundHalfUp rounds to the nearest integer with ties going toward positive
// infinity, so -2.5 becomes -2 rather than -3.
func RoundHalfUp(val float64) float64 {
	return math.Floor(val + 0.5)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Clamp bounds val to [lo, hi]. NaN is returned unchanged.
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ClampedPercent converts a ratio of value to total into a whole percentage
// in [0, 100]. The division is not guarded: a zero total yields 100 for a
// positive value. A NaN ratio yields 0.
func ClampedPercent(value, total float64) int {
	pct := RoundHalfUp(value / total * constants.PercentageMultiplier)
	if math.IsNaN(pct) {
		return 0
	}
	return int(Clamp(pct, 0, constants.MaxPercentage))
}

// Sum adds all values.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
