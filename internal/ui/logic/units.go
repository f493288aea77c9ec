package logic

// BaseFontSizePx is the rem base used for scroll offset math.
const BaseFontSizePx = 16.0

// PxToRem converts a pixel offset to rem units.
func PxToRem(px float64) float64 {
	return px / BaseFontSizePx
}

// RemToPx converts a rem offset to pixel units.
func RemToPx(rem float64) float64 {
	return rem * BaseFontSizePx
}
