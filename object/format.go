package object

import "strconv"

// formatNumber renders a float64 the way Print and diagnostics display
// numbers: integer-valued numbers print without a decimal point (so
// `print 7;` yields "7", not "7.0"), matching original_source's reliance
// on Rust's default f64 Display.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
