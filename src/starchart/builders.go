package starchart

import (
	"fmt"
	"math"
	"sort"

	"github.com/Yakovliev/astrolumina/src/analysis"
	"github.com/Yakovliev/astrolumina/src/catalog"
)

// TypeBarChart counts stars per type.
func TypeBarChart(c *catalog.Catalog) BarChart {
	counts := analysis.CountByCategory(c.Stars, catalog.StarType)
	return buildBarChart("Star Count by Type", "Star Type", counts, TypeColors)
}

// ColorBarChart counts stars per observed color.
func ColorBarChart(c *catalog.Catalog) BarChart {
	counts := analysis.CountByCategory(c.Stars, catalog.StarColor)
	return buildBarChart("Count of Stars by Color", "Star Color", counts, ColorDisplay)
}

// buildBarChart is the shared core of the categorical count charts; they
// differ only in accessor, palette and wording.
func buildBarChart(title, category string, counts []analysis.CategoryCount, palette map[string]string) BarChart {
	ch := BarChart{Title: title, XLabel: category, YLabel: "Count"}
	for _, c := range counts {
		ch.Bars = append(ch.Bars, Bar{
			Label:   c.Value,
			Count:   c.Count,
			Percent: c.Percent,
			Color:   colorFor(palette, c.Value),
			Hover:   fmt.Sprintf("%s: %s\nCount: %d\nPercentage: %.2f%%", category, c.Value, c.Count, c.Percent),
		})
	}
	return ch
}

// PropertyBoxGrid lays the numeric features out as box plots grouped by
// star type. Only the first cell carries the legend; the others would
// repeat it.
func PropertyBoxGrid(c *catalog.Catalog) BoxPlotGrid {
	grid := BoxPlotGrid{Title: "Feature Distribution by Star Type", Rows: 2, Cols: 2}
	for i, f := range catalog.Features {
		cell := BoxCell{Feature: f.Label, ShowLegend: i == 0}
		groups := analysis.GroupByCategory(c.Stars, catalog.StarType, f.Value)
		byName := make(map[string][]float64, len(groups))
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			byName[g.Category] = g.Values
			names = append(names, g.Category)
		}
		for _, name := range sortLabels(names, catalog.TypeOrder) {
			cell.Boxes = append(cell.Boxes, Box{
				Category: name,
				Color:    colorFor(TypeColors, name),
				Stats:    analysis.Summarize(byName[name]),
			})
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid
}

// HRScatter builds the Hertzsprung-Russell diagram: every star with both
// coordinates present, one series per type, plus the fixed reference
// overlays.
func HRScatter(c *catalog.Catalog) HRDiagram {
	d := HRDiagram{
		Title:          "Hertzsprung-Russell Diagram",
		XLabel:         catalog.ColTemperature,
		YLabel:         "Absolute Magnitude (Mv)",
		ReverseX:       true,
		ReverseY:       true,
		ReferenceStars: ReferenceStars,
		MainSequence:   MainSequenceCurve,
		Annotations:    HRRegions,
	}
	pts := map[string][]ScatterPoint{}
	for _, s := range c.Stars {
		if math.IsNaN(s.TemperatureK) || math.IsNaN(s.AbsoluteMagnitude) {
			continue
		}
		name := s.Type
		if name == "" {
			name = analysis.NoneBucket
		}
		pts[name] = append(pts[name], ScatterPoint{X: s.TemperatureK, Y: s.AbsoluteMagnitude})
	}
	for _, name := range sortLabels(mapKeys(pts), catalog.TypeOrder) {
		d.Series = append(d.Series, ScatterSeries{Name: name, Color: colorFor(TypeColors, name), Points: pts[name]})
	}
	return d
}

// CorrelationMatrix builds the pairwise feature view: scatter cells
// colored by spectral class, per-feature histograms on the diagonal.
func CorrelationMatrix(c *catalog.Catalog) ScatterMatrix {
	m := ScatterMatrix{Title: "Star Feature Correlations"}
	for _, f := range catalog.Features {
		m.Features = append(m.Features, f.Label)
	}
	for row, yf := range catalog.Features {
		for col, xf := range catalog.Features {
			cell := MatrixCell{Row: row, Col: col, XFeature: xf.Label, YFeature: yf.Label}
			if row == col {
				vals := make([]float64, 0, len(c.Stars))
				for _, s := range c.Stars {
					vals = append(vals, xf.Value(s))
				}
				cell.Histogram = analysis.HistogramBins(vals, 0)
			} else {
				pts := map[string][]ScatterPoint{}
				for _, s := range c.Stars {
					x, y := xf.Value(s), yf.Value(s)
					if math.IsNaN(x) || math.IsNaN(y) {
						continue
					}
					class := s.SpectralClass
					if class == "" {
						class = analysis.NoneBucket
					}
					pts[class] = append(pts[class], ScatterPoint{X: x, Y: y})
				}
				for _, name := range sortLabels(mapKeys(pts), ClassOrder) {
					cell.Series = append(cell.Series, ScatterSeries{Name: name, Color: colorFor(ClassColors, name), Points: pts[name]})
				}
			}
			m.Cells = append(m.Cells, cell)
		}
	}
	m.Legend = classLegend(c)
	return m
}

// classLegend lists the spectral classes present in the catalog with
// their swatch colors.
func classLegend(c *catalog.Catalog) []LegendEntry {
	seen := map[string]bool{}
	for _, s := range c.Stars {
		class := s.SpectralClass
		if class == "" {
			class = analysis.NoneBucket
		}
		seen[class] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	var legend []LegendEntry
	for _, name := range sortLabels(names, ClassOrder) {
		legend = append(legend, LegendEntry{Label: name, Color: colorFor(ClassColors, name)})
	}
	return legend
}

// sortLabels orders labels by the given canonical sequence, appending
// anything outside it alphabetically.
func sortLabels(labels []string, canonical []string) []string {
	rank := make(map[string]int, len(canonical))
	for i, name := range canonical {
		rank[name] = i
	}
	out := append([]string(nil), labels...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := rank[out[i]]
		rj, jKnown := rank[out[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return out[i] < out[j]
		}
	})
	return out
}

func mapKeys(m map[string][]ScatterPoint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
