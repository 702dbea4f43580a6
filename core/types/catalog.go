// Package types - Catalog and rate card reference data
package types

import "github.com/shopspring/decimal"

// ModuleCatalogEntry describes one independently priceable feature module.
// Catalog entries are reference data: read-only to the engine.
type ModuleCatalogEntry struct {
	// ModuleID is the unique catalog key
	ModuleID ModuleID `json:"module_id"`

	// Name is the display name
	Name string `json:"name"`

	// Description provides additional context
	Description string `json:"description,omitempty"`

	// Category groups modules for display (e.g. "commerce", "ai")
	Category string `json:"category,omitempty"`

	// BaseHours is the estimated labor hours for this module in isolation
	BaseHours float64 `json:"base_hours"`

	// BaseTokens is the estimated AI-assist token volume.
	// Informational; carried through but not consumed by the pricing math.
	BaseTokens int64 `json:"base_tokens"`

	// RiskWeight expresses inherent estimation uncertainty.
	// Typically 1.0-1.5; values above 1.0 widen the price band.
	RiskWeight float64 `json:"risk_weight"`

	// Dependencies are the module ids this module requires
	Dependencies []ModuleID `json:"dependencies,omitempty"`
}

// RateCard contains the billing rates applied to an estimate.
// Exactly one rate card is active per calculation; selecting it is the
// caller's responsibility.
type RateCard struct {
	// HourlyRate is the blended labor rate per hour
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// TokenRateIn is the currency cost per input AI-assist token.
	// Carried for callers; not consumed by the core pricing formula.
	TokenRateIn decimal.Decimal `json:"token_rate_in"`

	// TokenRateOut is the currency cost per output AI-assist token
	TokenRateOut decimal.Decimal `json:"token_rate_out"`

	// Markup is the business overhead multiplier. The engine never
	// applies it to the price band; callers may apply it separately.
	Markup float64 `json:"markup"`
}
