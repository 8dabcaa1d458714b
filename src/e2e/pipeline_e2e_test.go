// Package e2e walks the whole pipeline the way the binaries do: a CSV
// on disk goes through session load, chart building, and rasterization,
// and the result is written out as PNG.
package e2e

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yakovliev/astrolumina/src/catalog"
	"github.com/Yakovliev/astrolumina/src/render"
	"github.com/Yakovliev/astrolumina/src/starchart"
)

const header = "Temperature (K),Luminosity(L/Lo),Radius(R/Ro),Absolute magnitude(Mv),Star type,Star color,Spectral Class"

// writeDataset writes a catalog CSV into a fresh temp dir and returns
// its path.
func writeDataset(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stars.csv")
	content := strings.Join(append([]string{header}, rows...), "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// sampleRows covers all six star types, mixing numeric codes with
// spelled-out labels the way real exports do.
func sampleRows() []string {
	return []string{
		"2600,0.0003,0.11,18.7,0,Red,M",
		"3042,0.0005,0.1542,16.6,1,Red,M",
		"25000,0.0056,0.0084,10.18,2,Blue-White,B",
		"5778,1,1,4.83,3,Yellow-White,G",
		"9940,25.4,1.71,1.42,3,White,A",
		"3500,126000,887,-5.85,4,Red,M",
		"3490,270000,1420,-9.4,Hypergiants,Red,M",
	}
}

func TestCatalogToChartPipeline(t *testing.T) {
	path := writeDataset(t, sampleRows()...)

	session := catalog.NewSession(path)
	cat, err := session.Get()
	require.NoError(t, err, "loading a well-formed dataset must succeed")
	require.Len(t, cat.Stars, 7)
	assert.Equal(t, "Brown Dwarf", cat.Stars[0].Type, "numeric codes are normalized to labels")
	assert.Equal(t, "Hypergiants", cat.Stars[6].Type, "spelled-out labels pass through")

	types := starchart.TypeBarChart(cat)
	require.NotEmpty(t, types.Bars)
	assert.Equal(t, "Main Sequence", types.Bars[0].Label, "largest bucket leads")
	assert.Equal(t, 2, types.Bars[0].Count)
	sum := 0.0
	for _, b := range types.Bars {
		sum += b.Percent
		assert.Contains(t, b.Hover, "Percentage:", "hover text carries the share")
	}
	assert.InDelta(t, 100.0, sum, 1e-9, "percentages cover the catalog")

	colors := starchart.ColorBarChart(cat)
	require.NotEmpty(t, colors.Bars)
	assert.Equal(t, "Red", colors.Bars[0].Label)

	grid := starchart.PropertyBoxGrid(cat)
	require.Len(t, grid.Cells, 4, "one panel per numeric feature")
	assert.True(t, grid.Cells[0].ShowLegend)
	for _, cell := range grid.Cells {
		assert.NotEmpty(t, cell.Boxes, "every feature has data in this dataset")
	}

	hr := starchart.HRScatter(cat)
	assert.True(t, hr.ReverseX)
	assert.True(t, hr.ReverseY)
	assert.Len(t, hr.Series, 6, "one series per star type present")
	assert.NotEmpty(t, hr.ReferenceStars)
	assert.NotEmpty(t, hr.MainSequence)

	matrix := starchart.CorrelationMatrix(cat)
	require.Len(t, matrix.Features, 4)
	require.Len(t, matrix.Cells, 16)
	for _, cell := range matrix.Cells {
		if cell.Row == cell.Col {
			assert.NotEmpty(t, cell.Histogram, "diagonal cell %d/%d", cell.Row, cell.Col)
		} else {
			assert.NotEmpty(t, cell.Series, "scatter cell %d/%d", cell.Row, cell.Col)
		}
	}
	assert.Len(t, matrix.Legend, 4, "classes M, G, B, A are present")

	barImg, err := render.Bar(types, 640, 400)
	require.NoError(t, err)
	assert.Equal(t, 640, barImg.Bounds().Dx())
	assert.Equal(t, 400, barImg.Bounds().Dy())

	gridImg, err := render.BoxGrid(grid, 640, 480)
	require.NoError(t, err)
	assert.Equal(t, 640, gridImg.Bounds().Dx())
	assert.Equal(t, 480, gridImg.Bounds().Dy())

	hrImg, err := render.HR(hr, 800, 520)
	require.NoError(t, err)
	assert.Equal(t, 800, hrImg.Bounds().Dx())
	assert.Equal(t, 520, hrImg.Bounds().Dy())

	matrixImg, err := render.Matrix(matrix, 600, 500)
	require.NoError(t, err)
	assert.Equal(t, 600, matrixImg.Bounds().Dx())
	assert.Equal(t, 500, matrixImg.Bounds().Dy())

	// Export leg: encode to disk and read it back, like the render command.
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, hrImg))
	out := filepath.Join(t.TempDir(), "hr_diagram.png")
	require.NoError(t, os.WriteFile(out, buf.Bytes(), 0o644))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, hrImg.Bounds(), decoded.Bounds())
}

func TestSessionMemoizesFirstLoad(t *testing.T) {
	rows := sampleRows()
	path := writeDataset(t, rows[:2]...)

	session := catalog.NewSession(path)
	cat, err := session.Get()
	require.NoError(t, err)
	require.Len(t, cat.Stars, 2)

	// Grow the file behind the session's back.
	content := strings.Join(append([]string{header}, rows...), "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	again, err := session.Get()
	require.NoError(t, err)
	assert.Same(t, cat, again, "a session never reloads")

	fresh, err := catalog.NewSession(path).Get()
	require.NoError(t, err)
	assert.Len(t, fresh.Stars, 7, "a new session sees the new file")
}

func TestRejectedDatasetNeverReachesCharts(t *testing.T) {
	noColor := "Temperature (K),Luminosity(L/Lo),Radius(R/Ro),Absolute magnitude(Mv),Star type,Spectral Class"
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte(noColor+"\n3042,0.0005,0.15,16.6,1,M\n"), 0o644))

	session := catalog.NewSession(path)
	cat, err := session.Get()
	require.Error(t, err)
	assert.Nil(t, cat, "no catalog means no chart builder ever runs")

	var le *catalog.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
	assert.Contains(t, le.Error(), "Star color")

	_, err2 := session.Get()
	assert.Equal(t, err, err2, "the failure is memoized with the session")
}

func TestUnknownTypeCodeIsRejected(t *testing.T) {
	path := writeDataset(t, "3042,0.0005,0.15,16.6,9,Red,M")

	_, err := catalog.Load(path)
	require.Error(t, err)

	var le *catalog.LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "star type code 9")
}
