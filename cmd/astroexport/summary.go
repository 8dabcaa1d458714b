package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yakovliev/astrolumina/src/analysis"
	"github.com/Yakovliev/astrolumina/src/catalog"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print star counts by type, color, and spectral class",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	fmt.Printf("Catalog: %s\n", cat.Path)
	fmt.Printf("Stars: %d\n", len(cat.Stars))

	printCounts("Star types", analysis.CountByCategory(cat.Stars, catalog.StarType))
	printCounts("Star colors", analysis.CountByCategory(cat.Stars, catalog.StarColor))
	printCounts("Spectral classes", analysis.CountByCategory(cat.Stars, catalog.SpectralClass))
	return nil
}

func printCounts(title string, counts []analysis.CategoryCount) {
	fmt.Printf("\n%s:\n", title)
	for _, c := range counts {
		fmt.Printf("  %-22s %4d  %6.2f%%\n", c.Value, c.Count, c.Percent)
	}
}
