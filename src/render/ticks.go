package render

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	// round to nearest "nice" increments based on span order of magnitude
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n desired tick marks between [min, max] using
// nice increments (1, 2, 2.5, 5 scaled by powers of ten).
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// reversedTicks builds ticks for an axis that plots negated coordinates:
// tick positions are the negated values, labels show the true ones. The
// result stays ascending by position, which go-chart requires.
func reversedTicks(min, max float64, n int) []chart.Tick {
	base := niceTicks(min, max, n)
	out := make([]chart.Tick, 0, len(base))
	for i := len(base) - 1; i >= 0; i-- {
		out = append(out, chart.Tick{Value: -base[i].Value, Label: base[i].Label})
	}
	return out
}

// tickRange returns the span covered by a tick slice so that an axis
// range can line up exactly with the outermost labels.
func tickRange(ticks []chart.Tick) (float64, float64) {
	if len(ticks) == 0 {
		return 0, 1
	}
	return ticks[0].Value, ticks[len(ticks)-1].Value
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.2g", v)
	}
}
