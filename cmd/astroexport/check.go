package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yakovliev/astrolumina/src/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate that the catalog CSV loads cleanly",
	Long: `check loads the configured catalog and exits non-zero when the file is
missing required columns, contains non-numeric feature cells, or uses a
star type code outside the known range.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.DataFile)
	if err != nil {
		var le *catalog.LoadError
		if errors.As(err, &le) {
			return fmt.Errorf("catalog rejected: %w", le.Err)
		}
		return err
	}
	fmt.Printf("ok: %d stars in %s\n", len(cat.Stars), cat.Path)
	return nil
}
