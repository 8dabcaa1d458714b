package catalog

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column headers the dataset must provide. Matching trims surrounding
// whitespace; extra columns are ignored.
const (
	ColTemperature = "Temperature (K)"
	ColLuminosity  = "Luminosity(L/Lo)"
	ColRadius      = "Radius(R/Ro)"
	ColMagnitude   = "Absolute magnitude(Mv)"
	ColType        = "Star type"
	ColColor       = "Star color"
	ColSpectral    = "Spectral Class"
)

var requiredColumns = []string{
	ColTemperature, ColLuminosity, ColRadius, ColMagnitude,
	ColType, ColColor, ColSpectral,
}

// StarTypeNames maps the numeric classification codes used by the source
// dataset to display labels. A numeric code outside this table fails the
// load; non-numeric cells are taken as labels and pass through unchanged.
var StarTypeNames = map[int]string{
	0: "Brown Dwarf",
	1: "Red Dwarf",
	2: "White Dwarf",
	3: "Main Sequence",
	4: "Supergiants",
	5: "Hypergiants",
}

// TypeOrder lists the star type labels in classification-code order.
// Charts use it as the canonical series order.
var TypeOrder = []string{
	"Brown Dwarf", "Red Dwarf", "White Dwarf",
	"Main Sequence", "Supergiants", "Hypergiants",
}

// Star is one catalog record. Missing numeric cells are NaN; missing
// categorical cells are the empty string.
type Star struct {
	TemperatureK      float64 `json:"temperature_k"`
	Luminosity        float64 `json:"luminosity"`
	Radius            float64 `json:"radius"`
	AbsoluteMagnitude float64 `json:"absolute_magnitude"`
	Type              string  `json:"type"`
	Color             string  `json:"color"`
	SpectralClass     string  `json:"spectral_class"`
}

// Catalog holds the loaded dataset in file order. It is read-only after
// Load: star types are already normalized to labels, so nothing
// downstream re-checks the numeric coding.
type Catalog struct {
	Path  string
	Stars []Star
}

// Feature is a numeric column paired with its display label.
type Feature struct {
	Label string
	Value func(Star) float64
}

// Features lists the numeric columns in the order charts present them.
var Features = []Feature{
	{Label: ColTemperature, Value: func(s Star) float64 { return s.TemperatureK }},
	{Label: ColLuminosity, Value: func(s Star) float64 { return s.Luminosity }},
	{Label: ColRadius, Value: func(s Star) float64 { return s.Radius }},
	{Label: ColMagnitude, Value: func(s Star) float64 { return s.AbsoluteMagnitude }},
}

// Categorical accessors for the aggregation layer.
func StarType(s Star) string      { return s.Type }
func StarColor(s Star) string     { return s.Color }
func SpectralClass(s Star) string { return s.SpectralClass }

// Load reads a delimited star dataset and returns it with star types
// normalized to display labels. Every failure mode (unreadable file,
// malformed rows, missing required column, unparsable numeric cell,
// unknown numeric type code) returns a *LoadError; a header with zero
// data rows is a valid, empty catalog.
func Load(path string) (*Catalog, error) {
	defer TimeTrack(time.Now(), "catalog load")
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("empty file, expected a header row")}
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		name := strings.TrimSpace(h)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("missing required column %q", name)}
		}
	}

	stars := make([]Star, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2 // 1-based, header is line 1
		get := func(col string) string { return strings.TrimSpace(row[idx[col]]) }
		num := func(col string) (float64, error) {
			cell := get(col)
			if cell == "" {
				return math.NaN(), nil
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return 0, fmt.Errorf("line %d: column %q: %q is not numeric", line, col, cell)
			}
			return v, nil
		}

		var s Star
		if s.TemperatureK, err = num(ColTemperature); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if s.Luminosity, err = num(ColLuminosity); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if s.Radius, err = num(ColRadius); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if s.AbsoluteMagnitude, err = num(ColMagnitude); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if s.Type, err = normalizeStarType(get(ColType)); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		s.Color = get(ColColor)
		s.SpectralClass = get(ColSpectral)
		stars = append(stars, s)
	}
	Debugf("parsed %d data rows from %s", len(stars), path)
	return &Catalog{Path: path, Stars: stars}, nil
}

// normalizeStarType translates a numeric classification code into its
// display label. Cells that don't parse as an integer are assumed to be
// labels already, so a file may mix both forms.
func normalizeStarType(cell string) (string, error) {
	code, err := strconv.Atoi(cell)
	if err != nil {
		return cell, nil
	}
	label, ok := StarTypeNames[code]
	if !ok {
		return "", fmt.Errorf("star type code %d outside 0-%d", code, len(StarTypeNames)-1)
	}
	return label, nil
}
