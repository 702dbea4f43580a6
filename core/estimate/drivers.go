// Package estimate - Cost driver extraction
package estimate

import (
	"sort"

	"github.com/shopspring/decimal"

	"buildcost/core/types"
)

// Attribution fractions and impact thresholds for the multiplier
// drivers. The 40/30/30 split is a presentation heuristic kept for
// output compatibility, not a cost decomposition.
const (
	platformAttribution = 0.40
	authAttribution     = 0.30
	qualityAttribution  = 0.30

	platformHighThreshold = 1.5
	authHighThreshold     = 1.5
	qualityHighThreshold  = 1.8

	maxDrivers = 6
)

// Module drivers only appear above this pre-multiplier cost, and are
// tiered high above the post-multiplier amount threshold.
var (
	moduleDriverMinCost    = decimal.NewFromInt(1000)
	moduleDriverHighAmount = decimal.NewFromInt(2000)
)

// driverInputs carries everything driver extraction needs
type driverInputs struct {
	midpointCost    decimal.Decimal
	platform        types.Platform
	authLevel       types.AuthLevel
	quality         types.Quality
	platformMul     float64
	authMul         float64
	qualityMul      float64
	totalMultiplier float64
	breakdown       []types.ModuleCost
}

// extractDrivers builds the ranked "why it costs this much" list:
// one driver per non-neutral multiplier, plus up to the three most
// expensive modules, capped at maxDrivers and sorted by absolute
// dollar impact descending.
func extractDrivers(in driverInputs) []types.CostDriver {
	drivers := make([]types.CostDriver, 0, maxDrivers)

	if d, ok := multiplierDriver(platformDriverLabel(in.platform), in.platformMul,
		platformAttribution, platformHighThreshold, in.midpointCost); ok {
		drivers = append(drivers, d)
	}
	if d, ok := multiplierDriver(authDriverLabel(in.authLevel), in.authMul,
		authAttribution, authHighThreshold, in.midpointCost); ok {
		drivers = append(drivers, d)
	}
	if d, ok := multiplierDriver(qualityDriverLabel(in.quality), in.qualityMul,
		qualityAttribution, qualityHighThreshold, in.midpointCost); ok {
		drivers = append(drivers, d)
	}

	drivers = append(drivers, moduleDrivers(in.breakdown, in.totalMultiplier)...)

	// Sort by absolute amount descending; tie-break on name so equal
	// amounts still order deterministically
	sort.SliceStable(drivers, func(i, j int) bool {
		ai, aj := drivers[i].Amount.Abs(), drivers[j].Amount.Abs()
		if !ai.Equal(aj) {
			return ai.GreaterThan(aj)
		}
		return drivers[i].Name < drivers[j].Name
	})

	if len(drivers) > maxDrivers {
		drivers = drivers[:maxDrivers]
	}
	return drivers
}

// multiplierDriver attributes a fraction of the midpoint cost to one
// non-neutral multiplier. A multiplier below 1.0 yields a negative
// savings driver.
func multiplierDriver(label string, mul, fraction, highThreshold float64, midpoint decimal.Decimal) (types.CostDriver, bool) {
	if mul == 1.0 {
		return types.CostDriver{}, false
	}

	amount := midpoint.Mul(decimal.NewFromFloat((mul - 1) * fraction))
	impact := types.ImpactMedium
	if mul >= highThreshold {
		impact = types.ImpactHigh
	}
	return types.CostDriver{
		Name:   label,
		Impact: impact,
		Amount: amount,
	}, true
}

// moduleDrivers returns up to the top-3 most expensive modules by
// pre-multiplier cost, when that cost clears the reporting floor
func moduleDrivers(breakdown []types.ModuleCost, totalMultiplier float64) []types.CostDriver {
	ranked := make([]types.ModuleCost, len(breakdown))
	copy(ranked, breakdown)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Cost.Equal(ranked[j].Cost) {
			return ranked[i].Cost.GreaterThan(ranked[j].Cost)
		}
		return ranked[i].ModuleID < ranked[j].ModuleID
	})

	var drivers []types.CostDriver
	for _, mc := range ranked {
		if len(drivers) == 3 {
			break
		}
		if !mc.Cost.GreaterThan(moduleDriverMinCost) {
			break
		}
		amount := mc.Cost.Mul(decimal.NewFromFloat(totalMultiplier))
		impact := types.ImpactLow
		if amount.GreaterThan(moduleDriverHighAmount) {
			impact = types.ImpactHigh
		}
		drivers = append(drivers, types.CostDriver{
			Name:   mc.Name,
			Impact: impact,
			Amount: amount,
		})
	}
	return drivers
}
