package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-squash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the way play does (file search, variant,
difficulty preset) and print it as YAML. Redirect it to a file to start a
custom config:

  squash config > ~/.squash/configs/squash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
	}

	cfg, err := loadConfig(flagConfig, variantID, flagDifficulty)
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
