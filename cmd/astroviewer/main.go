package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Yakovliev/astrolumina/cmd/astroviewer/uihelpers"
	"github.com/Yakovliev/astrolumina/src/analysis"
	"github.com/Yakovliev/astrolumina/src/catalog"
	"github.com/Yakovliev/astrolumina/src/render"
	"github.com/Yakovliev/astrolumina/src/starchart"
)

// Page names double as radio options and preference values.
const (
	pageTypes      = "Star Types"
	pageColors     = "Star Colors"
	pageProperties = "Physical Properties"
	pageHR         = "HR Diagram"
	pageMatrix     = "Correlations"
)

var pageNames = []string{pageTypes, pageColors, pageProperties, pageHR, pageMatrix}

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	session  *catalog.Session
	cat      *catalog.Catalog

	page      string
	showHints bool

	// widgets
	chartCanvas  *canvas.Image
	pageInfo     *widget.Label
	detailsLabel *widget.Label
	pageRadio    *widget.RadioGroup
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	// CLI flag for opening a catalog directly
	var fileFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to the star catalog CSV")
	flag.Parse()

	a := app.NewWithID("com.astrolumina.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("AstroLumina")
	w.Resize(fyne.NewSize(1280, 860))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		page:     pageTypes,
	}
	// Load showHints early so the checkbox reflects it on creation
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	fileLabel := widget.NewLabel(truncatePath(state.filePath, 60))

	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)

	state.pageInfo = widget.NewLabel("")
	state.pageInfo.Wrapping = fyne.TextWrapWord
	state.detailsLabel = widget.NewLabel("")

	state.chartCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 480))

	state.pageRadio = widget.NewRadioGroup(pageNames, func(v string) {
		if v == "" {
			return
		}
		state.page = v
		savePrefs(state)
		refreshPage(state)
	})
	state.pageRadio.Selected = state.page

	// top bar
	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state, fileLabel) }),
		widget.NewButton("Reload", func() { loadAll(state, fileLabel) }),
		widget.NewButton("Export PNG…", func() { exportChartPNG(state, exportName(state.page)) }),
		widget.NewLabel("File:"), fileLabel,
	)

	sidebar := container.NewVBox(
		widget.NewLabelWithStyle("Charts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.pageRadio,
		widget.NewSeparator(),
		hintsChk,
		widget.NewSeparator(),
		state.detailsLabel,
	)
	sideScroll := container.NewVScroll(sidebar)
	sideScroll.SetMinSize(fyne.NewSize(280, 600))

	chartColumn := container.NewVBox(state.pageInfo, state.chartCanvas)
	chartScroll := container.NewVScroll(chartColumn)

	content := container.NewBorder(top, nil, sideScroll, nil, chartScroll)
	w.SetContent(content)

	// Redraw the chart on window resize so it scales with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						refreshChart(state)
					}
				}
			}
		}()
	}

	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		refreshChart(state)
	}

	buildMenus(state, fileLabel)
	loadPrefs(state, fileLabel, hintsChk)
	// An explicit -file flag wins over the remembered path
	if fileFlag != "" {
		state.filePath = fileFlag
		fileLabel.SetText(truncatePath(state.filePath, 60))
	}
	state.pageRadio.SetSelected(state.page)
	loadAll(state, fileLabel)

	w.ShowAndRun()
}

func buildMenus(state *uiState, fileLabel *widget.Label) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			state.filePath = f
			fileLabel.SetText(truncatePath(state.filePath, 60))
			savePrefs(state)
			loadAll(state, fileLabel)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state, fileLabel) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state, fileLabel) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state, fileLabel) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart…", func() { exportChartPNG(state, exportName(state.page)) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	mainMenu := fyne.NewMainMenu(fileMenu, recentMenu)
	state.window.SetMainMenu(mainMenu)

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadAll(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadAll(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// file open dialog
func openFileDialog(state *uiState, fileLabel *widget.Label) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		fileLabel.SetText(truncatePath(state.filePath, 60))
		addRecentFile(state, state.filePath)
		savePrefs(state)
		loadAll(state, fileLabel)
	}, state.window)
	d.Show()
}

// loadAll reads the catalog and refreshes the current page. A load
// failure keeps the previous catalog on screen and reports the error.
func loadAll(state *uiState, fileLabel *widget.Label) {
	if state.filePath == "" {
		if _, err := os.Stat(catalog.DefaultDataFile); err == nil {
			state.filePath = catalog.DefaultDataFile
			if fileLabel != nil {
				fileLabel.SetText(truncatePath(state.filePath, 60))
			}
		} else {
			refreshPage(state)
			return
		}
	}
	state.session = catalog.NewSession(state.filePath)
	cat, err := state.session.Get()
	if err != nil {
		dialog.ShowError(err, state.window)
		refreshPage(state)
		return
	}
	state.cat = cat
	fmt.Printf("[viewer] loaded %d stars from %s\n", len(cat.Stars), state.filePath)
	refreshPage(state)
}

func refreshPage(state *uiState) {
	if state.pageInfo != nil {
		state.pageInfo.SetText(pageDescription(state.page))
	}
	if state.detailsLabel != nil {
		state.detailsLabel.SetText(detailsText(state.cat, state.page))
	}
	refreshChart(state)
}

func refreshChart(state *uiState) {
	if state.chartCanvas == nil {
		return
	}
	img := renderPage(state)
	state.chartCanvas.Image = img
	w, h := chartSize(state)
	state.chartCanvas.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	state.chartCanvas.Refresh()
}

// renderPage rasterizes the active page. Render failures fall back to
// the blank placeholder so the window never shows a stale chart.
func renderPage(state *uiState) image.Image {
	w, h := chartSize(state)
	if state.cat == nil {
		return render.Blank(w, h)
	}
	var img image.Image
	var err error
	switch state.page {
	case pageColors:
		img, err = render.Bar(starchart.ColorBarChart(state.cat), w, h)
	case pageProperties:
		img, err = render.BoxGrid(starchart.PropertyBoxGrid(state.cat), w, h)
	case pageHR:
		img, err = render.HR(starchart.HRScatter(state.cat), w, h)
	case pageMatrix:
		img, err = render.Matrix(starchart.CorrelationMatrix(state.cat), w, h)
	default:
		img, err = render.Bar(starchart.TypeBarChart(state.cat), w, h)
	}
	if err != nil {
		catalog.Errorf("render %s: %v", state.page, err)
		return render.Blank(w, h)
	}
	if state.showHints {
		img = render.Hint(img, pageTip(state.page))
	}
	return img
}

// chartSize computes a chart size from the current window width so wide
// windows get wide charts.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 1000, 520
	}
	sz := state.window.Canvas().Size()
	return uihelpers.ComputeChartDimensions(int(sz.Width) - 300)
}

func pageDescription(page string) string {
	switch page {
	case pageTypes:
		return "Counts every star in the catalog by its classification, from brown dwarfs up to hypergiants."
	case pageColors:
		return "Groups stars by observed color. Bars use the color itself where it has a well-known hue."
	case pageProperties:
		return "Box plots of temperature, luminosity, radius, and absolute magnitude for each star type."
	case pageHR:
		return "Temperature against absolute magnitude with both axes reversed, the classic Hertzsprung-Russell layout. The Sun and a few notable stars are marked for orientation."
	case pageMatrix:
		return "Pairwise scatter plots of the four numeric features, colored by spectral class, with per-feature histograms on the diagonal."
	}
	return ""
}

// pageTip is the short usage hint drawn onto the chart when hints are on.
func pageTip(page string) string {
	switch page {
	case pageTypes, pageColors:
		return "Bar heights are star counts; exact percentages are in the side panel"
	case pageProperties:
		return "Boxes span Q1-Q3; whiskers reach the last point within 1.5x IQR"
	case pageHR:
		return "Axes are reversed: hot, bright stars sit top-left"
	case pageMatrix:
		return "Diagonal panels are histograms; points are colored by spectral class"
	}
	return ""
}

// detailsText summarizes the active page for the side panel.
func detailsText(cat *catalog.Catalog, page string) string {
	if cat == nil {
		return "No catalog loaded.\nUse File > Open… to pick a CSV."
	}
	switch page {
	case pageColors:
		return countLines(analysis.CountByCategory(cat.Stars, catalog.StarColor))
	case pageProperties:
		var b strings.Builder
		for _, f := range catalog.Features {
			groups := analysis.GroupByCategory(cat.Stars, catalog.StarType, f.Value)
			n := 0
			for _, g := range groups {
				n += len(g.Values)
			}
			fmt.Fprintf(&b, "%s: %d values\n", f.Label, n)
		}
		return strings.TrimRight(b.String(), "\n")
	case pageMatrix:
		return countLines(analysis.CountByCategory(cat.Stars, catalog.SpectralClass))
	default:
		return countLines(analysis.CountByCategory(cat.Stars, catalog.StarType))
	}
}

func countLines(counts []analysis.CategoryCount) string {
	var b strings.Builder
	for _, c := range counts {
		fmt.Fprintf(&b, "%s: %d (%.2f%%)\n", c.Value, c.Count, c.Percent)
	}
	return strings.TrimRight(b.String(), "\n")
}

// exportName is the suggested file name for the current page.
func exportName(page string) string {
	switch page {
	case pageColors:
		return "star_colors.png"
	case pageProperties:
		return "property_boxes.png"
	case pageHR:
		return "hr_diagram.png"
	case pageMatrix:
		return "correlations.png"
	}
	return "star_types.png"
}

// export PNG
func exportChartPNG(state *uiState, defaultName string) {
	if state == nil || state.window == nil || state.chartCanvas == nil || state.chartCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.chartCanvas.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	prefs := state.app.Preferences()
	raw := prefs.StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetString("lastPage", state.page)
	prefs.SetBool("showHints", state.showHints)
}

func loadPrefs(state *uiState, fileLabel *widget.Label, hintsChk *widget.Check) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if f := prefs.StringWithFallback("lastFile", state.filePath); f != "" {
		state.filePath = f
		if fileLabel != nil {
			fileLabel.SetText(truncatePath(state.filePath, 60))
		}
	}
	if p := prefs.StringWithFallback("lastPage", state.page); validPage(p) {
		state.page = p
	}
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	if hintsChk != nil {
		hintsChk.SetChecked(state.showHints)
	}
}

func validPage(p string) bool {
	for _, name := range pageNames {
		if name == p {
			return true
		}
	}
	return false
}

// utils
func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
