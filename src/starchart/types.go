// Package starchart turns a loaded catalog into declarative chart
// descriptions. Builders are pure: they never mutate the catalog, never
// fail, and leave toolkit concerns (pixels, fonts, widgets) to the
// rendering layer. Colors are #RRGGBB hex strings.
package starchart

import "github.com/Yakovliev/astrolumina/src/analysis"

// Bar is one category bar of a count chart.
type Bar struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
	Hover   string  `json:"hover"`
}

// BarChart describes a categorical count chart, bars already in display
// order.
type BarChart struct {
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	Bars   []Bar  `json:"bars"`
}

// Box is one box-and-whiskers glyph.
type Box struct {
	Category string            `json:"category"`
	Color    string            `json:"color"`
	Stats    analysis.BoxStats `json:"stats"`
}

// BoxCell is one feature's panel in the distribution grid.
type BoxCell struct {
	Feature    string `json:"feature"`
	ShowLegend bool   `json:"show_legend"`
	Boxes      []Box  `json:"boxes"`
}

// BoxPlotGrid is the distribution view: one cell per numeric feature,
// one box per star type that has data for it.
type BoxPlotGrid struct {
	Title string    `json:"title"`
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
	Cells []BoxCell `json:"cells"`
}

// ScatterPoint is one (x, y) marker in data coordinates.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterSeries groups the points of one category with its color.
type ScatterSeries struct {
	Name   string         `json:"name"`
	Color  string         `json:"color"`
	Points []ScatterPoint `json:"points"`
}

// RefStar is a named landmark star drawn over the catalog points.
type RefStar struct {
	Name         string  `json:"name"`
	TemperatureK float64 `json:"temperature_k"`
	Magnitude    float64 `json:"magnitude"`
}

// Annotation pins a text label at data coordinates.
type Annotation struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// HRDiagram describes the temperature/magnitude scatter. Both axes are
// reversed by astronomical convention: hotter stars sit left, brighter
// (more negative magnitude) stars sit up. Renderers must honor ReverseX
// and ReverseY exactly.
type HRDiagram struct {
	Title          string          `json:"title"`
	XLabel         string          `json:"x_label"`
	YLabel         string          `json:"y_label"`
	ReverseX       bool            `json:"reverse_x"`
	ReverseY       bool            `json:"reverse_y"`
	Series         []ScatterSeries `json:"series"`
	ReferenceStars []RefStar       `json:"reference_stars"`
	MainSequence   []ScatterPoint  `json:"main_sequence"`
	Annotations    []Annotation    `json:"annotations"`
}

// MatrixCell is one panel of the correlation matrix: pairwise scatter
// off the diagonal, a histogram of the feature on it.
type MatrixCell struct {
	Row       int                     `json:"row"`
	Col       int                     `json:"col"`
	XFeature  string                  `json:"x_feature"`
	YFeature  string                  `json:"y_feature"`
	Series    []ScatterSeries         `json:"series,omitempty"`
	Histogram []analysis.HistogramBin `json:"histogram,omitempty"`
}

// LegendEntry names a color swatch.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ScatterMatrix is the pairwise feature view, points colored by spectral
// class. Cells are laid out row-major over Features.
type ScatterMatrix struct {
	Title    string        `json:"title"`
	Features []string      `json:"features"`
	Cells    []MatrixCell  `json:"cells"`
	Legend   []LegendEntry `json:"legend"`
}
