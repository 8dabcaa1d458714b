package analysis

import (
	"math"
	"sort"
)

// BoxStats summarizes one distribution the way a box plot draws it.
type BoxStats struct {
	N           int       `json:"n"`
	Mean        float64   `json:"mean"`
	Median      float64   `json:"median"`
	Q1          float64   `json:"q1"`
	Q3          float64   `json:"q3"`
	WhiskerLow  float64   `json:"whisker_low"`
	WhiskerHigh float64   `json:"whisker_high"`
	Outliers    []float64 `json:"outliers,omitempty"`
}

// Quantile returns the q-th quantile (0..1) of sorted by linear
// interpolation between neighbouring order statistics (position q*(n-1)).
// sorted must be ascending; an empty input yields NaN.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	i := int(math.Floor(pos))
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// Summarize computes box-plot statistics. Quartiles interpolate linearly;
// whiskers reach the furthest points within 1.5*IQR of the quartiles;
// anything beyond is an outlier, reported in input order. NaN values are
// skipped; an all-NaN input yields the zero value with N == 0.
func Summarize(values []float64) BoxStats {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return BoxStats{}
	}
	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range clean {
		sum += v
	}
	st := BoxStats{
		N:      len(clean),
		Mean:   sum / float64(len(clean)),
		Median: Quantile(sorted, 0.5),
		Q1:     Quantile(sorted, 0.25),
		Q3:     Quantile(sorted, 0.75),
	}

	iqr := st.Q3 - st.Q1
	loFence := st.Q1 - 1.5*iqr
	hiFence := st.Q3 + 1.5*iqr
	lo, hi := 0, len(sorted)-1
	for lo < len(sorted) && sorted[lo] < loFence {
		lo++
	}
	for hi >= 0 && sorted[hi] > hiFence {
		hi--
	}
	if lo <= hi {
		st.WhiskerLow, st.WhiskerHigh = sorted[lo], sorted[hi]
	} else {
		st.WhiskerLow, st.WhiskerHigh = st.Median, st.Median
	}
	for _, v := range clean {
		if v < loFence || v > hiFence {
			st.Outliers = append(st.Outliers, v)
		}
	}
	return st
}

// HistogramBin is one bar of a distribution cell: [Low, High), except the
// last bin which includes its upper edge.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// HistogramBins splits values into equal-width bins across the data
// range. bins <= 0 selects Sturges' rule. NaN values are skipped; an
// empty or all-NaN input yields nil; a zero-width range collapses to a
// single bin holding everything.
func HistogramBins(values []float64, bins int) []HistogramBin {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = int(math.Ceil(math.Log2(float64(len(clean))))) + 1
	}
	min, max := clean[0], clean[0]
	for _, v := range clean[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return []HistogramBin{{Low: min, High: max, Count: len(clean)}}
	}
	width := (max - min) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = min + float64(i)*width
		out[i].High = min + float64(i+1)*width
	}
	out[len(out)-1].High = max
	for _, v := range clean {
		i := int((v - min) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
