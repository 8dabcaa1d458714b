package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"

	"github.com/Yakovliev/astrolumina/src/catalog"
)

// resetViper clears all viper state between tests to avoid
// cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"DataFile", cfg.DataFile, catalog.DefaultDataFile},
		{"OutDir", cfg.OutDir, "charts"},
		{"ChartWidth", cfg.ChartWidth, 1000},
		{"ChartHeight", cfg.ChartHeight, 520},
		{"LogLevel", cfg.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "data_file",
			envKey: "ASTROLUMINA_DATA_FILE",
			envVal: "/tmp/stars.csv",
			field:  func(c Config) any { return c.DataFile },
			want:   "/tmp/stars.csv",
		},
		{
			name:   "out_dir",
			envKey: "ASTROLUMINA_OUT_DIR",
			envVal: "/tmp/charts",
			field:  func(c Config) any { return c.OutDir },
			want:   "/tmp/charts",
		},
		{
			name:   "chart_width",
			envKey: "ASTROLUMINA_CHART_WIDTH",
			envVal: "800",
			field:  func(c Config) any { return c.ChartWidth },
			want:   800,
		},
		{
			name:   "log_level",
			envKey: "ASTROLUMINA_LOG_LEVEL",
			envVal: "debug",
			field:  func(c Config) any { return c.LogLevel },
			want:   "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix("ASTROLUMINA")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_DefaultsAreNotZero(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.DataFile == "" {
		t.Error("DataFile should not be empty")
	}
	if cfg.OutDir == "" {
		t.Error("OutDir should not be empty")
	}
	if cfg.ChartWidth == 0 || cfg.ChartHeight == 0 {
		t.Error("chart dimensions should not be zero")
	}
}
