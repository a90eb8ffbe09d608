package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the resolved configuration for a single run.
type Config struct {
	Input   string
	Word    string
	Cross   string
	Render  bool
	Verbose bool
}

// LoadConfig resolves configuration with the precedence flags >
// environment > config file > defaults. Environment variables use the
// XLATTICE_ prefix.
func LoadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("input", "input.txt")
	v.SetDefault("word", "XMAS")
	v.SetDefault("cross", "MAS")
	v.SetDefault("render", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("XLATTICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for _, key := range []string{"input", "word", "cross", "render", "verbose"} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", key, err)
			}
		}
	}

	cfg := &Config{
		Input:   v.GetString("input"),
		Word:    v.GetString("word"),
		Cross:   v.GetString("cross"),
		Render:  v.GetBool("render"),
		Verbose: v.GetBool("verbose"),
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Input == "" {
		return errors.New("input path must not be empty")
	}
	if cfg.Word == "" {
		return errors.New("word must not be empty")
	}
	return nil
}
