// Package cmd - estimate command
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"buildcost/adapters/storage"
	"buildcost/core/catalog"
	"buildcost/core/estimate"
	"buildcost/core/output"
	"buildcost/core/ratecard"
	"buildcost/core/types"
	"buildcost/internal/config"
	"buildcost/internal/logging"
)

var (
	platformFlag string
	authFlag     string
	qualityFlag  string
	moduleFlags  []string
	catalogPath  string
	rateCardPath string
	outputFormat string
	projectID    string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a build specification",
	Long: `Produce a price range, confidence score, cost drivers, and
assumptions for a build specification.

Unrecognized platform, auth, or quality values are treated as unknown
and widen the estimate band instead of failing. Module ids not present
in the catalog are dropped.

Examples:
  buildcost estimate --platform both --auth multi-tenant --quality production --modules subscriptions
  buildcost estimate --platform web --modules auth,checkout --format markdown
  buildcost estimate --catalog ./catalog.hcl --ratecard ./rates.yml --project acme-site`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&platformFlag, "platform", "p", "unknown", "target platform (web, mobile, both)")
	estimateCmd.Flags().StringVarP(&authFlag, "auth", "a", "unknown", "auth level (none, basic, roles, multi-tenant)")
	estimateCmd.Flags().StringVarP(&qualityFlag, "quality", "q", "unknown", "quality tier (prototype, mvp, production)")
	estimateCmd.Flags().StringSliceVarP(&moduleFlags, "modules", "m", nil, "selected module ids (comma separated)")
	estimateCmd.Flags().StringVar(&catalogPath, "catalog", "", "module catalog HCL file (default: built-in catalog)")
	estimateCmd.Flags().StringVar(&rateCardPath, "ratecard", "", "rate card YAML file (default: built-in rates)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().StringVar(&projectID, "project", "", "project id; stores the estimate when set")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	rc, err := loadRateCard(cfg)
	if err != nil {
		return err
	}

	spec := types.BuildSpec{
		Platform:  types.ParsePlatform(platformFlag),
		AuthLevel: types.ParseAuthLevel(authFlag),
		Quality:   types.ParseQuality(qualityFlag),
		Modules:   toModuleIDs(moduleFlags),
	}

	logging.Debug("calculating estimate",
		zap.String("platform", string(spec.Platform)),
		zap.String("auth", string(spec.AuthLevel)),
		zap.String("quality", string(spec.Quality)),
		zap.Int("modules", len(spec.Modules)))

	result, err := estimate.Calculate(spec, cat, rc)
	if err != nil {
		return err
	}

	if projectID != "" {
		if err := persistEstimate(cmd.Context(), cfg, spec, result); err != nil {
			return err
		}
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	return output.Render(os.Stdout, format, spec, result)
}

// loadCatalog resolves the catalog source: flag, config, or built-in
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

// loadRateCard resolves the rate card source: flag, config, or built-in
func loadRateCard(cfg *config.Config) (types.RateCard, error) {
	path := rateCardPath
	if path == "" {
		path = cfg.RateCardPath
	}
	if path == "" {
		return ratecard.Default(), nil
	}
	return ratecard.LoadFile(path)
}

func persistEstimate(ctx context.Context, cfg *config.Config, spec types.BuildSpec, result *types.EstimateResult) error {
	store, err := storage.New(storage.Backend(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	record := &storage.StoredEstimate{ProjectID: projectID, Spec: spec, Result: result}
	if err := store.Save(ctx, record); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Stored estimate %s for project %s\n", record.ID, projectID)
	return nil
}

func toModuleIDs(raw []string) []types.ModuleID {
	ids := make([]types.ModuleID, len(raw))
	for i, r := range raw {
		ids[i] = types.ModuleID(r)
	}
	return ids
}
