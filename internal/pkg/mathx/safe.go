// Package mathx provides the numeric primitives used by the scorecard
// engine. Every ratio and growth figure in the scorers goes through these
// helpers so that zero-equity or zero-revenue companies never crash a run.
package mathx

import "math"

// SafeDivide returns numerator/denominator, or def when the denominator is
// zero, NaN, or infinite, when the numerator is NaN or infinite, or when
// the quotient itself would be non-finite.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return def
	}
	if math.IsNaN(numerator) || math.IsInf(numerator, 0) {
		return def
	}
	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return def
	}
	return result
}

// CAGR returns the compound annual growth rate implied by start and end
// values over the given number of years. CAGR is undefined for non-positive
// bases, so 0 is returned when start <= 0, end <= 0, or years <= 0.
func CAGR(start, end, years float64) float64 {
	if start <= 0 || end <= 0 || years <= 0 {
		return 0
	}
	result := math.Pow(end/start, 1/years) - 1
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}
