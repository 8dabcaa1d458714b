package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Yakovliev/astrolumina/src/catalog"
	"github.com/Yakovliev/astrolumina/src/render"
	"github.com/Yakovliev/astrolumina/src/starchart"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render all charts to files",
	Long: `render builds every chart from the configured catalog and writes one
file per chart into the output directory. With --json the chart
descriptions are written instead of rasterized PNGs, which is handy for
inspecting exact counts, hover texts, and palette assignments.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "output directory (default charts)")
	renderCmd.Flags().Int("width", 0, "chart width in pixels")
	renderCmd.Flags().Int("height", 0, "chart height in pixels")
	renderCmd.Flags().Bool("json", false, "write chart descriptions as JSON instead of PNGs")

	_ = viper.BindPFlag("out_dir", renderCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("chart_width", renderCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("chart_height", renderCmd.Flags().Lookup("height"))

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	typeBars := starchart.TypeBarChart(cat)
	colorBars := starchart.ColorBarChart(cat)
	boxes := starchart.PropertyBoxGrid(cat)
	hr := starchart.HRScatter(cat)
	matrix := starchart.CorrelationMatrix(cat)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		toWrite := []struct {
			name string
			v    any
		}{
			{"star_types.json", typeBars},
			{"star_colors.json", colorBars},
			{"property_boxes.json", boxes},
			{"hr_diagram.json", hr},
			{"correlations.json", matrix},
		}
		for _, item := range toWrite {
			b, err := json.MarshalIndent(item.v, "", "  ")
			if err != nil {
				return fmt.Errorf("encode %s: %w", item.name, err)
			}
			outPath := filepath.Join(cfg.OutDir, item.name)
			if err := os.WriteFile(outPath, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Printf("wrote %s\n", outPath)
		}
		return nil
	}

	w, h := cfg.ChartWidth, cfg.ChartHeight
	toRender := []struct {
		name string
		fn   func() (image.Image, error)
	}{
		{"star_types.png", func() (image.Image, error) { return render.Bar(typeBars, w, h) }},
		{"star_colors.png", func() (image.Image, error) { return render.Bar(colorBars, w, h) }},
		{"property_boxes.png", func() (image.Image, error) { return render.BoxGrid(boxes, w, h) }},
		{"hr_diagram.png", func() (image.Image, error) { return render.HR(hr, w, h) }},
		{"correlations.png", func() (image.Image, error) { return render.Matrix(matrix, w, h) }},
	}
	for _, item := range toRender {
		img, err := item.fn()
		if err != nil {
			return fmt.Errorf("render %s: %w", item.name, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(cfg.OutDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("wrote %s\n", outPath)
	}
	return nil
}
