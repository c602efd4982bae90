package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configOverridesFlags configOverrides

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a round would use, as YAML.

The output can be saved to ~/.snake/config.yaml and edited.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configOverridesFlags.register(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd, &configOverridesFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
