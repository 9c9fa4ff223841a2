package heatmap

// Contrast curve constants. The two breakpoints and slopes are part of the
// rendering contract; the curve is continuous at both breakpoints.
const (
	lowBreakpoint  = 0.3
	highBreakpoint = 0.7
	lowSlope       = 0.5
	highSlope      = 1.5
)

// absoluteCeiling is the price at which absolute intensity saturates.
const absoluteCeiling = 3_000_000

// AbsoluteIntensity maps a raw price to [0,1] against a fixed ceiling. Used
// when no comparison set exists.
func AbsoluteIntensity(price float64) float64 {
	intensity := price / absoluteCeiling
	if intensity > 1.0 {
		return 1.0
	}
	return intensity
}

// NormalizeBatch maps each price onto [0,1] relative to the batch's own
// min/max and applies the contrast curve. A degenerate batch where every
// price is equal normalizes to 0.5 across the board.
func NormalizeBatch(prices []float64) []float64 {
	if len(prices) == 0 {
		return nil
	}

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}
	priceRange := maxPrice - minPrice

	intensities := make([]float64, len(prices))
	for i, p := range prices {
		raw := 0.5
		if priceRange > 0 {
			raw = (p - minPrice) / priceRange
		}
		intensities[i] = ApplyContrast(raw)
	}
	return intensities
}

// ApplyContrast shapes a raw [0,1] value so cheap clusters read cooler and
// expensive clusters read hotter: values below 0.3 are compressed, values
// above 0.7 expanded, the middle left linear.
func ApplyContrast(raw float64) float64 {
	switch {
	case raw < lowBreakpoint:
		return raw * lowSlope
	case raw > highBreakpoint:
		shaped := highBreakpoint + (raw-highBreakpoint)*highSlope
		if shaped > 1.0 {
			return 1.0
		}
		return shaped
	default:
		return raw
	}
}
