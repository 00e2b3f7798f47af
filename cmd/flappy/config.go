package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
file search and the difficulty preset are applied.

The output is valid YAML and can be saved as ~/.flappy/flappy.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}

// loadConfig resolves the config file and applies the --difficulty preset.
func loadConfig() (config.Config, string, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.Config{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}
