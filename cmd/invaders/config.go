package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.invaders/configs/invaders.yaml or ./configs/invaders.yaml
and edit the values you want to change; missing keys keep their defaults.

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
