// astroexport is the headless companion to the astroviewer GUI. It
// renders the catalog charts to PNG or JSON files and prints quick
// summaries without opening a window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Yakovliev/astrolumina/src/catalog"
	"github.com/Yakovliev/astrolumina/src/config"
)

var rootCmd = &cobra.Command{
	Use:   "astroexport",
	Short: "Render star catalog charts without the GUI",
	Long: `astroexport loads a star catalog CSV and produces the same charts the
viewer shows: star type and color counts, feature box plots, the
Hertzsprung-Russell diagram, and the feature scatter matrix.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .astrolumina.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "star catalog CSV path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".astrolumina")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ASTROLUMINA")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig resolves settings and applies the requested log level.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if viper.GetBool("verbose") {
		catalog.SetLogLevel("debug")
	} else {
		catalog.SetLogLevel(cfg.LogLevel)
	}
	return cfg, nil
}
