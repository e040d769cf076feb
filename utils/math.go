package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// WithinTolerance reports whether two amounts agree within the split tolerance
func WithinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= SplitTolerance
}
