package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const testHeader = "Temperature (K),Luminosity(L/Lo),Radius(R/Ro),Absolute magnitude(Mv),Star type,Star color,Spectral Class"

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stars.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoad_NormalizesNumericCodes(t *testing.T) {
	path := writeCSV(t, testHeader,
		"3068,0.0024,0.17,16.12,0,Red,M",
		"3042,0.0005,0.1542,16.6,1,Red,M",
		"14100,0.00016,0.0084,11.34,2,White,A",
		"6112,1.012,1.02,4.68,3,Yellow-White,G",
		"23440,244290,35,-6.1,4,Blue,O",
		"3625,184000,1183,-9.4,5,Red,M",
	)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cat.Stars) != 6 {
		t.Fatalf("expected 6 stars, got %d", len(cat.Stars))
	}
	for i, want := range TypeOrder {
		if got := cat.Stars[i].Type; got != want {
			t.Fatalf("row %d: type = %q, want %q", i, got, want)
		}
	}
	if cat.Stars[0].TemperatureK != 3068 || cat.Stars[0].AbsoluteMagnitude != 16.12 {
		t.Fatalf("row 0 numerics wrong: %+v", cat.Stars[0])
	}
}

func TestLoad_LabelsPassThrough(t *testing.T) {
	path := writeCSV(t, testHeader,
		"5778,1,1,4.83,Main Sequence,Yellow-White,G",
		"2900,0.0009,0.11,17.4,Weird Custom Type,Red,M",
	)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Stars[0].Type != "Main Sequence" {
		t.Fatalf("label row changed: %q", cat.Stars[0].Type)
	}
	if cat.Stars[1].Type != "Weird Custom Type" {
		t.Fatalf("unknown label must pass through untouched, got %q", cat.Stars[1].Type)
	}
}

func TestLoad_NumericAndLabelFormsEquivalent(t *testing.T) {
	coded := writeCSV(t, testHeader,
		"3068,0.0024,0.17,16.12,0,Red,M",
		"23440,244290,35,-6.1,4,Blue,O",
	)
	labeled := writeCSV(t, testHeader,
		"3068,0.0024,0.17,16.12,Brown Dwarf,Red,M",
		"23440,244290,35,-6.1,Supergiants,Blue,O",
	)
	a, err := Load(coded)
	if err != nil {
		t.Fatalf("load coded: %v", err)
	}
	b, err := Load(labeled)
	if err != nil {
		t.Fatalf("load labeled: %v", err)
	}
	if !reflect.DeepEqual(a.Stars, b.Stars) {
		t.Fatalf("coded and labeled forms diverge:\n%+v\n%+v", a.Stars, b.Stars)
	}
}

func TestLoad_CodeOutOfRangeFails(t *testing.T) {
	for _, code := range []string{"6", "-1", "42"} {
		path := writeCSV(t, testHeader, "5000,1,1,5,"+code+",Red,M")
		_, err := Load(path)
		if err == nil {
			t.Fatalf("code %s: expected error", code)
		}
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("code %s: expected *LoadError, got %T", code, err)
		}
		if !strings.Contains(err.Error(), "star type code") {
			t.Fatalf("code %s: unexpected message %q", code, err)
		}
	}
}

func TestLoad_MissingColumnFails(t *testing.T) {
	header := "Temperature (K),Luminosity(L/Lo),Radius(R/Ro),Absolute magnitude(Mv),Star type,Spectral Class"
	path := writeCSV(t, header, "3068,0.0024,0.17,16.12,0,M")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing Star color column")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if !strings.Contains(err.Error(), `"Star color"`) {
		t.Fatalf("error should name the missing column: %q", err)
	}
}

func TestLoad_BadNumericCellFails(t *testing.T) {
	path := writeCSV(t, testHeader,
		"3068,0.0024,0.17,16.12,0,Red,M",
		"hot,0.0005,0.15,16.6,1,Red,M",
	)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for non-numeric temperature")
	}
	if !strings.Contains(err.Error(), "line 3") || !strings.Contains(err.Error(), `"hot"`) {
		t.Fatalf("error should carry line and cell: %q", err)
	}
}

func TestLoad_EmptyCellsBecomeNaNOrNoneLabel(t *testing.T) {
	path := writeCSV(t, testHeader,
		"3068,0.0024,,16.12,0,,M",
	)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := cat.Stars[0]
	if !math.IsNaN(s.Radius) {
		t.Fatalf("empty radius cell should be NaN, got %v", s.Radius)
	}
	if s.Color != "" {
		t.Fatalf("empty color cell should stay empty, got %q", s.Color)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if le.Path == "" {
		t.Fatal("LoadError should carry the path")
	}
}

func TestLoad_MalformedRowsFail(t *testing.T) {
	path := writeCSV(t, testHeader,
		`3068,0.0024,0.17,16.12,0,"Red,M`,
	)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unterminated quote")
	}
	path = writeCSV(t, testHeader,
		"3068,0.0024,0.17",
	)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestLoad_HeaderOnlyIsEmptyCatalog(t *testing.T) {
	path := writeCSV(t, testHeader)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("header-only file should load: %v", err)
	}
	if len(cat.Stars) != 0 {
		t.Fatalf("expected empty catalog, got %d stars", len(cat.Stars))
	}
}

func TestLoad_ExtraColumnsAndPaddedHeadersIgnored(t *testing.T) {
	header := " Temperature (K) ,Luminosity(L/Lo),Radius(R/Ro),Absolute magnitude(Mv),Star type,Star color,Spectral Class,Notes"
	path := writeCSV(t, header, "3068,0.0024,0.17,16.12,0,Red,M,left over from survey")
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Stars[0].TemperatureK != 3068 {
		t.Fatalf("padded header not matched: %+v", cat.Stars[0])
	}
}

func TestSession_MemoizesCatalogAndError(t *testing.T) {
	path := writeCSV(t, testHeader, "3068,0.0024,0.17,16.12,0,Red,M")
	sess := NewSession(path)
	a, err := sess.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := sess.Get()
	if a != b {
		t.Fatal("session must return the same catalog instance")
	}

	bad := NewSession(filepath.Join(t.TempDir(), "missing.csv"))
	_, err1 := bad.Get()
	_, err2 := bad.Get()
	if err1 == nil || err2 == nil {
		t.Fatal("failed load should keep failing")
	}
	if err1 != err2 {
		t.Fatal("failed load should be memoized, not retried")
	}
}
