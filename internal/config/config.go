// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime knob. All values have defaults; overrides
// come from FOODLOG_* environment variables.
type Config struct {
	DataDir       string
	SlotName      string
	JournalCap    int
	AnalysisDelay time.Duration
}

// Load reads the configuration and ensures the data directory exists.
func Load() (*Config, error) {
	viper.SetEnvPrefix("foodlog")
	viper.AutomaticEnv()

	home, _ := os.UserHomeDir()
	viper.SetDefault("DATA_DIR", filepath.Join(home, ".foodlog"))
	viper.SetDefault("SLOT_NAME", "meals")
	viper.SetDefault("JOURNAL_CAP", 100)
	viper.SetDefault("ANALYSIS_DELAY_MS", 1500)

	cfg := &Config{
		DataDir:       viper.GetString("DATA_DIR"),
		SlotName:      viper.GetString("SLOT_NAME"),
		JournalCap:    viper.GetInt("JOURNAL_CAP"),
		AnalysisDelay: time.Duration(viper.GetInt("ANALYSIS_DELAY_MS")) * time.Millisecond,
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", cfg.DataDir, err)
	}
	return cfg, nil
}

// DBPath is the journal database location inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}

// LogPath is the log file location. The TUI owns stdout, so logs go to disk.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "foodlog.log")
}
