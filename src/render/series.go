package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Yakovliev/astrolumina/src/analysis"
)

// boxPlotSeries draws one box-and-whiskers glyph at an integer X slot.
// go-chart has no box primitive, so this implements chart.Series with the
// same Renderer calls the library's own series use. It also implements
// chart.ValuesProvider so automatic ranging sees the glyph's extent.
type boxPlotSeries struct {
	Name  string
	Color drawing.Color
	X     float64
	Half  float64 // half-width of the box in X data units
	Stats analysis.BoxStats
}

func (s boxPlotSeries) GetName() string { return s.Name }

func (s boxPlotSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s boxPlotSeries) Validate() error {
	if s.Stats.N == 0 {
		return fmt.Errorf("box %s has no data", s.Name)
	}
	return nil
}

// GetStyle colors the legend swatch; the glyph itself draws from Color.
func (s boxPlotSeries) GetStyle() chart.Style {
	return chart.Style{StrokeColor: s.Color, StrokeWidth: 2, FillColor: s.Color.WithAlpha(110)}
}

func (s boxPlotSeries) Len() int { return 2 + len(s.Stats.Outliers) }

func (s boxPlotSeries) GetValues(i int) (float64, float64) {
	switch i {
	case 0:
		return s.X - s.Half, s.Stats.WhiskerLow
	case 1:
		return s.X + s.Half, s.Stats.WhiskerHigh
	default:
		return s.X, s.Stats.Outliers[i-2]
	}
}

func (s boxPlotSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	cx := func(v float64) int { return canvasBox.Left + xrange.Translate(v) }
	cy := func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) }

	left, right, mid := cx(s.X-s.Half), cx(s.X+s.Half), cx(s.X)
	capHalf := (right - left) / 4
	q1, q3 := cy(s.Stats.Q1), cy(s.Stats.Q3)
	lowY, highY := cy(s.Stats.WhiskerLow), cy(s.Stats.WhiskerHigh)

	stroke := func() {
		r.SetStrokeColor(s.Color)
		r.SetStrokeWidth(2)
		r.SetStrokeDashArray(nil)
	}

	// whisker stems and caps
	stroke()
	r.MoveTo(mid, q1)
	r.LineTo(mid, lowY)
	r.Stroke()
	r.MoveTo(mid-capHalf, lowY)
	r.LineTo(mid+capHalf, lowY)
	r.Stroke()
	r.MoveTo(mid, q3)
	r.LineTo(mid, highY)
	r.Stroke()
	r.MoveTo(mid-capHalf, highY)
	r.LineTo(mid+capHalf, highY)
	r.Stroke()

	// interquartile box
	stroke()
	r.SetFillColor(s.Color.WithAlpha(110))
	r.MoveTo(left, q3)
	r.LineTo(right, q3)
	r.LineTo(right, q1)
	r.LineTo(left, q1)
	r.Close()
	r.FillStroke()

	// median line
	med := cy(s.Stats.Median)
	stroke()
	r.MoveTo(left, med)
	r.LineTo(right, med)
	r.Stroke()

	// mean as a dashed line, the way grouped box plots mark it
	mean := cy(s.Stats.Mean)
	r.SetStrokeColor(s.Color)
	r.SetStrokeWidth(1)
	r.SetStrokeDashArray([]float64{3.0, 3.0})
	r.MoveTo(left, mean)
	r.LineTo(right, mean)
	r.Stroke()

	// outliers
	r.SetStrokeDashArray(nil)
	r.SetStrokeColor(s.Color)
	r.SetFillColor(s.Color)
	for _, v := range s.Stats.Outliers {
		r.Circle(2.5, mid, cy(v))
		r.FillStroke()
	}
}

// histogramSeries draws the distribution bars on a matrix diagonal cell.
type histogramSeries struct {
	Name  string
	Color drawing.Color
	Bins  []analysis.HistogramBin
}

func (s histogramSeries) GetName() string { return s.Name }

func (s histogramSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s histogramSeries) Validate() error {
	if len(s.Bins) == 0 {
		return fmt.Errorf("histogram %s has no bins", s.Name)
	}
	return nil
}

func (s histogramSeries) GetStyle() chart.Style {
	return chart.Style{StrokeColor: s.Color, StrokeWidth: 1, FillColor: s.Color.WithAlpha(140)}
}

func (s histogramSeries) Len() int { return 2 * len(s.Bins) }

// GetValues walks bin corners so the auto-ranger covers both the full X
// span and the tallest count (plus the zero baseline).
func (s histogramSeries) GetValues(i int) (float64, float64) {
	b := s.Bins[i/2]
	if i%2 == 0 {
		return b.Low, 0
	}
	return b.High, float64(b.Count)
}

func (s histogramSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	cx := func(v float64) int { return canvasBox.Left + xrange.Translate(v) }
	cy := func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) }

	base := cy(0)
	r.SetStrokeColor(s.Color)
	r.SetStrokeWidth(1)
	r.SetFillColor(s.Color.WithAlpha(140))
	for _, b := range s.Bins {
		if b.Count == 0 {
			continue
		}
		left, right, top := cx(b.Low), cx(b.High), cy(float64(b.Count))
		if right <= left {
			right = left + 1
		}
		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, base)
		r.LineTo(left, base)
		r.Close()
		r.FillStroke()
	}
}
