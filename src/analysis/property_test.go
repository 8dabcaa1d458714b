package analysis

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Yakovliev/astrolumina/src/catalog"
)

var colorPool = []string{"", "Red", "Blue", "Blue-White", "White", "Yellowish", "Orange-Red"}

func starsFromKeys(keys []int) []catalog.Star {
	stars := make([]catalog.Star, len(keys))
	for i, k := range keys {
		stars[i].Color = colorPool[k%len(colorPool)]
		stars[i].TemperatureK = float64(2500 + 100*i)
		if k%5 == 0 {
			stars[i].TemperatureK = math.NaN()
		}
	}
	return stars
}

func TestAggregation_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("percentages sum to 100 over any non-empty catalog", prop.ForAll(
		func(keys []int) bool {
			stars := starsFromKeys(keys)
			out := CountByCategory(stars, catalog.StarColor)
			if len(stars) == 0 {
				return out == nil
			}
			var sum float64
			for _, c := range out {
				sum += c.Percent
			}
			return math.Abs(sum-100) < 1e-9
		},
		gen.SliceOf(gen.IntRange(0, 50)),
	))

	properties.Property("counts are non-increasing with ties by label ascending", prop.ForAll(
		func(keys []int) bool {
			out := CountByCategory(starsFromKeys(keys), catalog.StarColor)
			for i := 1; i < len(out); i++ {
				if out[i].Count > out[i-1].Count {
					return false
				}
				if out[i].Count == out[i-1].Count && out[i].Value < out[i-1].Value {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 50)),
	))

	properties.Property("grouping never yields an empty category", prop.ForAll(
		func(keys []int) bool {
			stars := starsFromKeys(keys)
			groups := GroupByCategory(stars, catalog.StarColor, func(s catalog.Star) float64 { return s.TemperatureK })
			collected := 0
			for _, g := range groups {
				if len(g.Values) == 0 {
					return false
				}
				collected += len(g.Values)
			}
			nonNaN := 0
			for _, s := range stars {
				if !math.IsNaN(s.TemperatureK) {
					nonNaN++
				}
			}
			return collected == nonNaN
		},
		gen.SliceOf(gen.IntRange(0, 50)),
	))

	properties.Property("box stats partition values into whisker range and outliers", prop.ForAll(
		func(values []float64) bool {
			st := Summarize(values)
			if len(values) == 0 {
				return st.N == 0
			}
			if st.Q1 > st.Median || st.Median > st.Q3 || st.WhiskerLow > st.WhiskerHigh {
				return false
			}
			inRange := 0
			for _, v := range values {
				if v >= st.WhiskerLow && v <= st.WhiskerHigh {
					inRange++
				}
			}
			return inRange+len(st.Outliers) == st.N
		},
		gen.SliceOf(gen.Float64Range(-1e6, 1e6)),
	))

	properties.TestingRun(t)
}
