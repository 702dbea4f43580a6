// Package estimate implements the pricing calculator.
//
// Calculate is a pure function of (spec, catalog, rate card): identical
// inputs always produce byte-identical results. It degrades gracefully
// on soft anomalies (empty selection, unknown enum values, missing
// dependency ids) and errors only on structural invariant violations
// (a cyclic dependency graph).
package estimate

import (
	"math"

	"github.com/shopspring/decimal"

	"buildcost/core/catalog"
	"buildcost/core/expansion"
	"buildcost/core/types"
)

// Band-width and scoring constants. The variance increments and
// confidence penalties are tuning values, not derived figures.
const (
	baseVariance            = 0.25
	varianceUnknownPlatform = 0.15
	varianceUnknownAuth     = 0.10
	varianceUnknownQuality  = 0.20
	maxVariance             = 0.70

	baseConfidence           = 85
	penaltyUnknownPlatform   = 10
	penaltyUnknownAuth       = 8
	penaltyUnknownQuality    = 10
	penaltyZeroModules       = 30
	penaltyFewModules        = 10
	penaltyRiskOver12        = 5
	penaltyRiskOver14        = 5
	fewModulesThreshold      = 3
	riskPenaltyFirstCutoff   = 1.2
	riskPenaltySecondCutoff  = 1.4
)

// Minimum engagement floors. Even a degenerate empty-module request
// quotes a minimum viable engagement price.
var (
	floorPriceMin = decimal.NewFromInt(2000)
	floorPriceMid = decimal.NewFromInt(3000)
	floorPriceMax = decimal.NewFromInt(4000)
)

// Calculate produces a complete estimate for a build specification
// against a module catalog and rate card.
func Calculate(spec types.BuildSpec, cat *catalog.Catalog, rc types.RateCard) (*types.EstimateResult, error) {
	// 1. Resolve the module closure
	allModules, err := expansion.Expand(spec.Modules, cat)
	if err != nil {
		return nil, err
	}

	// 2. Aggregate base cost and build the per-module breakdown
	var totalBaseHours, totalRiskWeight float64
	var totalTokens int64
	breakdown := make([]types.ModuleCost, 0, len(allModules))
	for _, id := range allModules {
		entry, ok := cat.Get(id)
		if !ok {
			continue
		}
		totalBaseHours += entry.BaseHours
		totalRiskWeight += entry.RiskWeight
		totalTokens += entry.BaseTokens
		breakdown = append(breakdown, types.ModuleCost{
			ModuleID: entry.ModuleID,
			Name:     entry.Name,
			Hours:    entry.BaseHours,
			Tokens:   entry.BaseTokens,
			Cost:     rc.HourlyRate.Mul(decimal.NewFromFloat(entry.BaseHours)),
		})
	}

	// Neutral risk baseline when nothing is selected
	avgRiskWeight := 1.0
	if len(allModules) > 0 {
		avgRiskWeight = totalRiskWeight / float64(len(allModules))
	}

	// 3. Compose multipliers
	platformMul := platformMultiplier(spec.Platform)
	authMul := authMultiplier(spec.AuthLevel)
	qualityMul := qualityMultiplier(spec.Quality)
	totalMultiplier := platformMul * authMul * qualityMul
	adjustedHours := totalBaseHours * totalMultiplier

	// 4. Compute variance: unresolved inputs and risky module choices
	// widen the band, they do not shift the midpoint
	variance := baseVariance
	if spec.Platform == types.PlatformUnknown {
		variance += varianceUnknownPlatform
	}
	if spec.AuthLevel == types.AuthUnknown {
		variance += varianceUnknownAuth
	}
	if spec.Quality == types.QualityUnknown {
		variance += varianceUnknownQuality
	}
	variance *= avgRiskWeight
	if variance > maxVariance {
		variance = maxVariance
	}

	// 5. Derive the price and hours bands. Hour estimates are treated
	// as less volatile than dollar totals once the rate is fixed, so
	// the hours band uses half the price variance.
	midpointCost := rc.HourlyRate.Mul(decimal.NewFromFloat(adjustedHours))
	p10 := midpointCost.Mul(decimal.NewFromFloat(1 - variance))
	p90 := midpointCost.Mul(decimal.NewFromFloat(1 + variance))
	hoursMin := adjustedHours * (1 - variance/2)
	hoursMax := adjustedHours * (1 + variance/2)

	// 6. Score confidence
	confidence := scoreConfidence(spec, len(allModules), avgRiskWeight)

	// 7. Extract cost drivers
	drivers := extractDrivers(driverInputs{
		midpointCost:    midpointCost,
		platform:        spec.Platform,
		authLevel:       spec.AuthLevel,
		quality:         spec.Quality,
		platformMul:     platformMul,
		authMul:         authMul,
		qualityMul:      qualityMul,
		totalMultiplier: totalMultiplier,
		breakdown:       breakdown,
	})

	// 8. Generate assumptions
	assumptions := buildAssumptions(spec, allModules, cat, rc)

	// 9. Floor and round final numbers
	return &types.EstimateResult{
		PriceMin:    round100(decimal.Max(floorPriceMin, p10)),
		PriceMid:    round100(decimal.Max(floorPriceMid, midpointCost)),
		PriceMax:    round100(decimal.Max(floorPriceMax, p90)),
		Confidence:  confidence,
		HoursMin:    int(math.Round(hoursMin)),
		HoursMax:    int(math.Round(hoursMax)),
		DaysMin:     round1(hoursMin / 8),
		DaysMax:     round1(hoursMax / 8),
		CostDrivers: drivers,
		Assumptions: assumptions,
		Breakdown:   breakdown,
		TotalTokens: totalTokens,
	}, nil
}

// scoreConfidence produces the integer confidence score in [0, 100].
// Penalties are additive, not exclusive: a request with zero modules
// and an unknown platform loses both.
func scoreConfidence(spec types.BuildSpec, moduleCount int, avgRiskWeight float64) int {
	confidence := baseConfidence
	if spec.Platform == types.PlatformUnknown {
		confidence -= penaltyUnknownPlatform
	}
	if spec.AuthLevel == types.AuthUnknown {
		confidence -= penaltyUnknownAuth
	}
	if spec.Quality == types.QualityUnknown {
		confidence -= penaltyUnknownQuality
	}
	if moduleCount == 0 {
		confidence -= penaltyZeroModules
	}
	if moduleCount < fewModulesThreshold {
		confidence -= penaltyFewModules
	}
	// Two independent risk thresholds; both can fire
	if avgRiskWeight > riskPenaltyFirstCutoff {
		confidence -= penaltyRiskOver12
	}
	if avgRiskWeight > riskPenaltySecondCutoff {
		confidence -= penaltyRiskOver14
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

// round100 rounds to the nearest 100 currency units
func round100(d decimal.Decimal) decimal.Decimal {
	return d.Div(decimal.NewFromInt(100)).Round(0).Mul(decimal.NewFromInt(100))
}

// round1 rounds to one decimal place
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
