// Package render rasterizes chart descriptions from starchart into
// images. Builders stay pure data; everything pixel-shaped lives here so
// the viewer and the export tool share one rendering path.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Yakovliev/astrolumina/src/starchart"
)

const (
	minChartWidth  = 320
	minChartHeight = 240

	titleStripHeight  = 26
	legendStripHeight = 22
)

// The HR diagram keeps its traditional dark canvas; the other charts
// render on the default light background.
var (
	hrPaper = drawing.Color{R: 0x0A, G: 0x0A, B: 0x1E, A: 255}
	hrPlot  = drawing.Color{R: 0x0F, G: 0x0F, B: 0x23, A: 255}
	hrInk   = drawing.Color{R: 0xE0, G: 0xE0, B: 0xEC, A: 255}
	hrGrid  = drawing.Color{R: 0x3C, G: 0x3C, B: 0x5A, A: 255}

	stripInk = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)

// hexColor converts a "#RRGGBB" palette entry into a drawing color.
func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// pointStyle renders a series as dots only. A zero stroke width would
// inherit the default line width and join the dots up.
func pointStyle(col drawing.Color, dotWidth float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    dotWidth,
		DotColor:    col,
	}
}

// Blank returns the placeholder shown while a chart renders or when a
// description has nothing to draw.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 18, G: 18, B: 18, A: 255}), image.Point{}, draw.Src)
	return img
}

func clampSize(w, h int) (int, int) {
	if w < minChartWidth {
		w = minChartWidth
	}
	if h < minChartHeight {
		h = minChartHeight
	}
	return w, h
}

// pngChart is satisfied by both chart.Chart and chart.BarChart.
type pngChart interface {
	Render(chart.RendererProvider, io.Writer) error
}

func renderPNG(c pngChart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// Bar renders a categorical bar chart. Bars keep the order and colors of
// the description.
func Bar(desc starchart.BarChart, w, h int) (image.Image, error) {
	w, h = clampSize(w, h)
	if len(desc.Bars) == 0 {
		return Blank(w, h), nil
	}
	values := make([]chart.Value, 0, len(desc.Bars))
	maxCount := 0
	for _, b := range desc.Bars {
		col := hexColor(b.Color)
		values = append(values, chart.Value{
			Value: float64(b.Count),
			Label: b.Label,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	_, hi := niceAxisBounds(0, float64(maxCount))
	ticks := niceTicks(0, hi, 6)
	_, top := tickRange(ticks)

	slot := (w - 120) / len(values)
	barWidth := slot * 3 / 5
	if barWidth < 8 {
		barWidth = 8
	}

	bc := chart.BarChart{
		Title:  desc.Title,
		Width:  w,
		Height: h,
		Background: chart.Style{
			Padding: chart.Box{Top: 36, Left: 16, Right: 16, Bottom: 12},
		},
		BarWidth:   barWidth,
		BarSpacing: slot - barWidth,
		XAxis:      chart.Style{FontSize: 9},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 9},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
			Ticks: ticks,
		},
		Bars: values,
	}
	return renderPNG(bc)
}

// HR renders the Hertzsprung-Russell diagram on its dark canvas. Both
// axes display reversed, so hot luminous stars sit top-left. go-chart
// ranges are strictly ascending, so reversal plots negated coordinates
// against ticks relabeled with the true values.
func HR(desc starchart.HRDiagram, w, h int) (image.Image, error) {
	w, h = clampSize(w, h)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for _, s := range desc.Series {
		for _, p := range s.Points {
			grow(p.X, p.Y)
		}
	}
	for _, rs := range desc.ReferenceStars {
		grow(rs.TemperatureK, rs.Magnitude)
	}
	for _, p := range desc.MainSequence {
		grow(p.X, p.Y)
	}
	if math.IsInf(minX, 1) {
		return Blank(w, h), nil
	}

	flip := func(reverse bool) func(float64) float64 {
		if reverse {
			return func(v float64) float64 { return -v }
		}
		return func(v float64) float64 { return v }
	}
	sx := flip(desc.ReverseX)
	sy := flip(desc.ReverseY)

	loX, hiX := niceAxisBounds(minX, maxX)
	loY, hiY := niceAxisBounds(minY, maxY)
	var xticks, yticks []chart.Tick
	if desc.ReverseX {
		xticks = reversedTicks(loX, hiX, 8)
	} else {
		xticks = niceTicks(loX, hiX, 8)
	}
	if desc.ReverseY {
		yticks = reversedTicks(loY, hiY, 7)
	} else {
		yticks = niceTicks(loY, hiY, 7)
	}
	xlo, xhi := tickRange(xticks)
	ylo, yhi := tickRange(yticks)

	var series []chart.Series
	for _, s := range desc.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = sx(p.X)
			ys[i] = sy(p.Y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			Style:   pointStyle(hexColor(s.Color), 4),
			XValues: xs,
			YValues: ys,
		})
	}

	if len(desc.MainSequence) > 1 {
		xs := make([]float64, len(desc.MainSequence))
		ys := make([]float64, len(desc.MainSequence))
		for i, p := range desc.MainSequence {
			xs[i] = sx(p.X)
			ys[i] = sy(p.Y)
		}
		series = append(series, chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor:     drawing.Color{R: 255, G: 255, B: 255, A: 110},
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{4, 4},
			},
			XValues: xs,
			YValues: ys,
		})
	}

	if len(desc.ReferenceStars) > 0 {
		gold := drawing.Color{R: 255, G: 215, B: 0, A: 255}
		xs := make([]float64, len(desc.ReferenceStars))
		ys := make([]float64, len(desc.ReferenceStars))
		notes := make([]chart.Value2, 0, len(desc.ReferenceStars))
		for i, rs := range desc.ReferenceStars {
			xs[i] = sx(rs.TemperatureK)
			ys[i] = sy(rs.Magnitude)
			notes = append(notes, chart.Value2{XValue: xs[i], YValue: ys[i], Label: rs.Name})
		}
		series = append(series,
			chart.ContinuousSeries{Style: pointStyle(gold, 5), XValues: xs, YValues: ys},
			chart.AnnotationSeries{
				Style:       chart.Style{StrokeColor: gold, FillColor: hrPlot, FontColor: hrInk, FontSize: 8},
				Annotations: notes,
			},
		)
	}

	for _, a := range desc.Annotations {
		col := hexColor(a.Color)
		series = append(series, chart.AnnotationSeries{
			Style:       chart.Style{StrokeColor: col, FillColor: hrPaper, FontColor: col, FontSize: 9},
			Annotations: []chart.Value2{{XValue: sx(a.X), YValue: sy(a.Y), Label: a.Text}},
		})
	}

	axisStyle := chart.Style{FontColor: hrInk, FontSize: 9, StrokeColor: hrGrid}
	ch := chart.Chart{
		Title:      desc.Title,
		TitleStyle: chart.Style{FontColor: hrInk, FontSize: 13},
		Width:      w,
		Height:     h - legendStripHeight,
		Background: chart.Style{FillColor: hrPaper, Padding: chart.Box{Top: 10, Left: 10, Right: 16, Bottom: 4}},
		Canvas:     chart.Style{FillColor: hrPlot},
		XAxis: chart.XAxis{
			Name:      desc.XLabel,
			NameStyle: chart.Style{FontColor: hrInk, FontSize: 9},
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: xlo, Max: xhi},
			Ticks:     xticks,
		},
		YAxis: chart.YAxis{
			Name:      desc.YLabel,
			NameStyle: chart.Style{FontColor: hrInk, FontSize: 9},
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: ylo, Max: yhi},
			Ticks:     yticks,
		},
		Series: series,
	}

	img, err := renderPNG(ch)
	if err != nil {
		return nil, err
	}

	entries := make([]starchart.LegendEntry, 0, len(desc.Series))
	for _, s := range desc.Series {
		entries = append(entries, starchart.LegendEntry{Label: s.Name, Color: s.Color})
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.RGBA{R: hrPaper.R, G: hrPaper.G, B: hrPaper.B, A: 255}), image.Point{}, draw.Src)
	draw.Draw(out, img.Bounds(), img, image.Point{}, draw.Src)
	drawLegendStrip(out, h-legendStripHeight, w, entries, color.RGBA{R: hrInk.R, G: hrInk.G, B: hrInk.B, A: 255})
	return out, nil
}

// BoxGrid renders the feature-distribution grid: one panel per feature,
// star types side by side within each panel.
func BoxGrid(desc starchart.BoxPlotGrid, w, h int) (image.Image, error) {
	w, h = clampSize(w, h)
	rows, cols := desc.Rows, desc.Cols
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	cellW := w / cols
	cellH := (h - titleStripHeight) / rows

	cells := make([]image.Image, len(desc.Cells))
	for i, cell := range desc.Cells {
		if len(cell.Boxes) == 0 {
			continue
		}
		img, err := boxCell(cell, cellW, cellH)
		if err != nil {
			return nil, err
		}
		cells[i] = img
	}
	return composePanels(desc.Title, rows, cols, cellW, cellH, cells, nil), nil
}

func boxCell(cell starchart.BoxCell, w, h int) (image.Image, error) {
	series := make([]chart.Series, 0, len(cell.Boxes))
	ticks := make([]chart.Tick, 0, len(cell.Boxes))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, b := range cell.Boxes {
		x := float64(i + 1)
		series = append(series, boxPlotSeries{
			Name:  b.Category,
			Color: hexColor(b.Color),
			X:     x,
			Half:  0.3,
			Stats: b.Stats,
		})
		lo, hi := b.Stats.WhiskerLow, b.Stats.WhiskerHigh
		for _, o := range b.Stats.Outliers {
			lo = math.Min(lo, o)
			hi = math.Max(hi, o)
		}
		minY = math.Min(minY, lo)
		maxY = math.Max(maxY, hi)
		ticks = append(ticks, chart.Tick{Value: x, Label: b.Category})
	}
	loY, hiY := niceAxisBounds(minY, maxY)
	yticks := niceTicks(loY, hiY, 5)
	ylo, yhi := tickRange(yticks)

	ch := chart.Chart{
		Title:      cell.Feature,
		TitleStyle: chart.Style{FontSize: 10},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 8, Left: 6, Right: 10, Bottom: 2}},
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 7},
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(len(cell.Boxes)) + 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 7},
			Range: &chart.ContinuousRange{Min: ylo, Max: yhi},
			Ticks: yticks,
		},
		Series: series,
	}
	if cell.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return renderPNG(ch)
}

// Matrix renders the scatter matrix: histograms on the diagonal, pairwise
// scatters elsewhere, and a shared legend strip for the spectral classes.
func Matrix(desc starchart.ScatterMatrix, w, h int) (image.Image, error) {
	w, h = clampSize(w, h)
	n := len(desc.Features)
	if n == 0 {
		return Blank(w, h), nil
	}
	avail := h - titleStripHeight
	if len(desc.Legend) > 0 {
		avail -= legendStripHeight
	}
	cellW := w / n
	cellH := avail / n

	cells := make([]image.Image, len(desc.Cells))
	for i, cell := range desc.Cells {
		img, err := matrixCell(cell, cellW, cellH)
		if err != nil {
			return nil, err
		}
		cells[i] = img
	}
	return composePanels(desc.Title, n, n, cellW, cellH, cells, desc.Legend), nil
}

// matrixCell renders one panel. Axes are hidden; the diagonal carries the
// feature name as its panel title. Returns nil for a panel with no data.
func matrixCell(cell starchart.MatrixCell, w, h int) (image.Image, error) {
	hidden := chart.Style{Hidden: true}

	if cell.Row == cell.Col {
		if len(cell.Histogram) == 0 {
			return nil, nil
		}
		lo := cell.Histogram[0].Low
		hi := cell.Histogram[len(cell.Histogram)-1].High
		if hi <= lo {
			lo, hi = lo-0.5, hi+0.5
		}
		maxCount := 0
		for _, b := range cell.Histogram {
			if b.Count > maxCount {
				maxCount = b.Count
			}
		}
		ch := chart.Chart{
			Title:      cell.XFeature,
			TitleStyle: chart.Style{FontSize: 8},
			Width:      w,
			Height:     h,
			Background: chart.Style{Padding: chart.Box{Top: 4, Left: 4, Right: 4, Bottom: 4}},
			XAxis:      chart.XAxis{Style: hidden, Range: &chart.ContinuousRange{Min: lo, Max: hi}},
			YAxis:      chart.YAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount) * 1.05}},
			Series: []chart.Series{histogramSeries{
				Name:  cell.XFeature,
				Color: drawing.Color{R: 0x63, G: 0x6E, B: 0xFA, A: 255},
				Bins:  cell.Histogram,
			}},
		}
		return renderPNG(ch)
	}

	var series []chart.Series
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range cell.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = p.X
			ys[i] = p.Y
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			Style:   pointStyle(hexColor(s.Color), 2),
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return nil, nil
	}
	loX, hiX := niceAxisBounds(minX, maxX)
	loY, hiY := niceAxisBounds(minY, maxY)
	ch := chart.Chart{
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 4, Left: 4, Right: 4, Bottom: 4}},
		XAxis:      chart.XAxis{Style: hidden, Range: &chart.ContinuousRange{Min: loX, Max: hiX}},
		YAxis:      chart.YAxis{Style: hidden, Range: &chart.ContinuousRange{Min: loY, Max: hiY}},
		Series:     series,
	}
	return renderPNG(ch)
}

// composePanels stitches pre-rendered panels into a titled grid. Nil
// panels leave their slot at the background color.
func composePanels(title string, rows, cols, cellW, cellH int, cells []image.Image, legend []starchart.LegendEntry) image.Image {
	w := cols * cellW
	h := titleStripHeight + rows*cellH
	if len(legend) > 0 {
		h += legendStripHeight
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	drawCenteredText(out, w/2, titleStripHeight-9, title, stripInk)
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		r := i / cols
		c := i % cols
		x := c * cellW
		y := titleStripHeight + r*cellH
		draw.Draw(out, image.Rect(x, y, x+cellW, y+cellH), cell, cell.Bounds().Min, draw.Src)
	}
	if len(legend) > 0 {
		drawLegendStrip(out, h-legendStripHeight, w, legend, stripInk)
	}
	return out
}
