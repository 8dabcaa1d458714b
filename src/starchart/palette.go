package starchart

import "github.com/Yakovliev/astrolumina/src/catalog"

// Fixed lookup tables. All package-level values here are immutable by
// convention; chart builds read them concurrently and never write.

// FallbackColor is used whenever a category has no palette entry. A miss
// is never an error.
const FallbackColor = "#808080"

// TypeColors maps star type labels to their chart color.
var TypeColors = map[string]string{
	"Brown Dwarf":   "#A52A2A",
	"Red Dwarf":     "#FF0000",
	"White Dwarf":   "#87CEFA",
	"Main Sequence": "#FFFF00",
	"Supergiants":   "#0000FF",
	"Hypergiants":   "#FFA500",
}

// ColorDisplay maps the dataset's star color names to drawable colors
// that resemble the color they name.
var ColorDisplay = map[string]string{
	"Red":          "#FF4500",
	"Blue":         "#0000FF",
	"Blue-White":   "#ADD8E6",
	"White":        "#F0FFFF",
	"Yellow-White": "#FFFF00",
	"Yellowish":    "#FFD700",
	"Orange":       "#FFA500",
	"Orange-Red":   "#FF6347",
}

// ClassOrder lists spectral classes hottest first.
var ClassOrder = []string{"O", "B", "A", "F", "G", "K", "M"}

// ClassColors maps spectral classes to scatter colors, assigned in
// ClassOrder from a qualitative palette chosen for contrast.
var ClassColors = map[string]string{
	"O": "#636EFA",
	"B": "#EF553B",
	"A": "#00CC96",
	"F": "#AB63FA",
	"G": "#FFA15A",
	"K": "#19D3F3",
	"M": "#FF6692",
}

// ReferenceStars are landmark stars drawn on the HR diagram for
// orientation. The Sun anchors it at (5778 K, +4.83 Mv).
var ReferenceStars = []RefStar{
	{Name: "Sun", TemperatureK: 5778, Magnitude: 4.83},
	{Name: "Sirius A", TemperatureK: 9940, Magnitude: 1.42},
	{Name: "Vega", TemperatureK: 9602, Magnitude: 0.58},
	{Name: "Rigel", TemperatureK: 12100, Magnitude: -7.84},
	{Name: "Betelgeuse", TemperatureK: 3500, Magnitude: -5.85},
	{Name: "Barnard's Star", TemperatureK: 3134, Magnitude: 13.25},
}

// MainSequenceCurve approximates the main sequence as (K, Mv) control
// points, hottest first.
var MainSequenceCurve = []ScatterPoint{
	{X: 40000, Y: -5.7},
	{X: 30000, Y: -4.0},
	{X: 15200, Y: -1.2},
	{X: 9600, Y: 0.65},
	{X: 8310, Y: 1.95},
	{X: 7350, Y: 2.7},
	{X: 6700, Y: 3.5},
	{X: 6050, Y: 4.4},
	{X: 5660, Y: 5.1},
	{X: 5240, Y: 5.9},
	{X: 4400, Y: 7.35},
	{X: 3750, Y: 8.8},
	{X: 3100, Y: 12.3},
	{X: 2500, Y: 16.0},
}

// HRRegions are the static region labels drawn on the HR diagram.
var HRRegions = []Annotation{
	{Text: "Hot Blue Stars", X: 30000, Y: 0, Color: "#ADD8E6"},
	{Text: "Red Giants", X: 6000, Y: 15, Color: "#F08080"},
	{Text: "Main Sequence", X: 6000, Y: 0, Color: "#FFFFFF"},
}

// colorFor looks name up in table, falling back to FallbackColor for
// categories outside the palette.
func colorFor(table map[string]string, name string) string {
	if c, ok := table[name]; ok {
		return c
	}
	catalog.Debugf("no palette entry for %q, using fallback", name)
	return FallbackColor
}
