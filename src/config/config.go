// Package config resolves runtime settings shared by the viewer and the
// export tool.
package config

import (
	"github.com/spf13/viper"

	"github.com/Yakovliev/astrolumina/src/catalog"
)

// Config holds all runtime configuration for the AstroLumina tools.
// Values are populated from .astrolumina.yaml, ASTROLUMINA_* env vars,
// and CLI flags, in ascending precedence.
type Config struct {
	DataFile    string `mapstructure:"data_file"`
	OutDir      string `mapstructure:"out_dir"`
	ChartWidth  int    `mapstructure:"chart_width"`
	ChartHeight int    `mapstructure:"chart_height"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data_file", catalog.DefaultDataFile)
	viper.SetDefault("out_dir", "charts")
	viper.SetDefault("chart_width", 1000)
	viper.SetDefault("chart_height", 520)
	viper.SetDefault("log_level", "info")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
