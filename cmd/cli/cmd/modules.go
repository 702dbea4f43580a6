// Package cmd - modules command
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"buildcost/internal/config"
)

// modulesCmd lists the module catalog
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the priceable feature modules",
	Long: `List every module in the catalog with its base hours, risk
weight, and dependencies. Pass --catalog to inspect a custom catalog
file instead of the built-in one.`,
	RunE: runModules,
}

func init() {
	modulesCmd.Flags().StringVar(&catalogPath, "catalog", "", "module catalog HCL file (default: built-in catalog)")
}

func runModules(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(config.Get())
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	bold.Fprintf(os.Stdout, "%-18s %-26s %-12s %7s %6s  %s\n",
		"ID", "NAME", "CATEGORY", "HOURS", "RISK", "DEPENDS ON")
	for _, e := range cat.Entries() {
		fmt.Fprintf(os.Stdout, "%-18s %-26s %-12s %7.1f %6.2f  ",
			e.ModuleID, e.Name, e.Category, e.BaseHours, e.RiskWeight)
		if len(e.Dependencies) == 0 {
			dim.Fprintln(os.Stdout, "-")
			continue
		}
		for i, dep := range e.Dependencies {
			if i > 0 {
				fmt.Fprint(os.Stdout, ", ")
			}
			fmt.Fprint(os.Stdout, dep)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
