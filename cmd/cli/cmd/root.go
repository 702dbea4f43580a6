// Package cmd provides the CLI commands for buildcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"buildcost/internal/config"
	"buildcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "buildcost",
	Short: "Estimate the cost of building a software project",
	Long: `buildcost is a deterministic build-cost estimation tool.

It resolves a set of selected feature modules against a module catalog,
applies platform, authentication, and quality multipliers, and produces
a probabilistic price range with a confidence score, ranked cost
drivers, and plain-language assumptions.

Examples:
  buildcost estimate --platform web --auth basic --quality mvp --modules auth,checkout
  buildcost estimate --catalog catalog.hcl --ratecard rates.yml --format json
  buildcost modules`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.buildcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("buildcost version 0.1.0")
	},
}
