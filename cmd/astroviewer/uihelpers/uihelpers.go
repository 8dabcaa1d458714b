package uihelpers

// ComputeChartDimensions applies the width/height clamp rules used for
// the chart area. Input: available raw width (window width minus the
// sidebar). Returns clamped width and height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.55)
	if h < 360 {
		h = 360
	}
	if h > 760 {
		h = 760
	}
	return w, h
}
