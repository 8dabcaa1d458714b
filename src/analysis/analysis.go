package analysis

import (
	"math"
	"sort"

	"github.com/Yakovliev/astrolumina/src/catalog"
)

// NoneBucket is the category label for rows whose categorical cell is
// empty, so percentages always account for every row.
const NoneBucket = "(none)"

// CategoryCount is one bar of a categorical tally: how many rows carry
// Value and which share of the whole catalog that is.
type CategoryCount struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// CountByCategory tallies rows per category, ordered by descending count
// with ties broken by label ascending. Percent is computed over all rows
// including the NoneBucket, so the column sums to 100.
func CountByCategory(stars []catalog.Star, key func(catalog.Star) string) []CategoryCount {
	if len(stars) == 0 {
		return nil
	}
	counts := map[string]int{}
	for _, s := range stars {
		k := key(s)
		if k == "" {
			k = NoneBucket
		}
		counts[k]++
	}
	total := float64(len(stars))
	out := make([]CategoryCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, CategoryCount{Value: v, Count: c, Percent: 100 * float64(c) / total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// GroupedValues holds the non-null numeric values of one category, in
// dataset order.
type GroupedValues struct {
	Category string    `json:"category"`
	Values   []float64 `json:"values"`
}

// GroupByCategory collects value(s) per category, skipping NaN cells.
// Categories appear in first-seen order; a category whose values are all
// missing is omitted entirely, never returned with an empty slice.
func GroupByCategory(stars []catalog.Star, key func(catalog.Star) string, value func(catalog.Star) float64) []GroupedValues {
	byCat := map[string]int{}
	var out []GroupedValues
	for _, s := range stars {
		v := value(s)
		if math.IsNaN(v) {
			continue
		}
		k := key(s)
		if k == "" {
			k = NoneBucket
		}
		i, ok := byCat[k]
		if !ok {
			i = len(out)
			byCat[k] = i
			out = append(out, GroupedValues{Category: k})
		}
		out[i].Values = append(out[i].Values, v)
	}
	return out
}
