package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Export   ExportConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig controls the log file. The terminal belongs to the TUI, so logs
// never go to stdout.
type LogConfig struct {
	Path  string
	Level string
}

// ExportConfig controls where reports are written.
type ExportConfig struct {
	Dir string
}

// Load reads configuration from file and env. Env var overrides use prefix GPACALC_.
func Load() (Config, error) {
	v := viper.New()

	base, err := baseDir()
	if err != nil {
		return Config{}, err
	}
	home, _ := os.UserHomeDir()

	v.SetDefault("database.path", filepath.Join(base, "gpacalc.db"))
	v.SetDefault("log.path", filepath.Join(base, "gpacalc.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("export.dir", home)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GPACALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(base)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GPACALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit GPACALC_CONFIG must exist; the default location may not.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func baseDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(cfg, "gpacalc"), nil
}
