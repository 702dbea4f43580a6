// Package types - Estimate result types
package types

import "github.com/shopspring/decimal"

// Impact classifies how strongly a cost driver affects the estimate
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// CostDriver is a labeled, signed dollar contribution explaining a
// portion of the estimate to an end user.
type CostDriver struct {
	// Name is the human-readable driver label
	Name string `json:"name"`

	// Impact is the driver's impact tier
	Impact Impact `json:"impact"`

	// Amount is the attributed dollar contribution. Negative amounts
	// represent savings (e.g. prototype quality).
	Amount decimal.Decimal `json:"amount"`
}

// ModuleCost is the per-module cost breakdown before multipliers
type ModuleCost struct {
	// ModuleID is the catalog key
	ModuleID ModuleID `json:"module_id"`

	// Name is the module display name
	Name string `json:"name"`

	// Hours is the module's base labor hours
	Hours float64 `json:"hours"`

	// Tokens is the module's AI-assist token volume
	Tokens int64 `json:"tokens"`

	// Cost is hours * hourly rate, before multipliers
	Cost decimal.Decimal `json:"cost"`
}

// EstimateResult is the complete output of one calculation.
// All fields are final rounded values; the result is immutable.
type EstimateResult struct {
	// PriceMin is the low end of the price band (P10), floored and
	// rounded to the nearest 100
	PriceMin decimal.Decimal `json:"price_min"`

	// PriceMid is the midpoint price (P50)
	PriceMid decimal.Decimal `json:"price_mid"`

	// PriceMax is the high end of the price band (P90)
	PriceMax decimal.Decimal `json:"price_max"`

	// Confidence is an integer score in [0, 100]
	Confidence int `json:"confidence"`

	// HoursMin is the low hours estimate, rounded to the nearest integer
	HoursMin int `json:"hours_min"`

	// HoursMax is the high hours estimate
	HoursMax int `json:"hours_max"`

	// DaysMin is the low calendar estimate (hours / 8), one decimal
	DaysMin float64 `json:"days_min"`

	// DaysMax is the high calendar estimate
	DaysMax float64 `json:"days_max"`

	// CostDrivers explains the estimate. At most 6 entries, sorted by
	// absolute amount descending.
	CostDrivers []CostDriver `json:"cost_drivers"`

	// Assumptions are ordered plain-language caveats
	Assumptions []string `json:"assumptions"`

	// Breakdown is the per-module pre-multiplier cost breakdown,
	// in dependency order
	Breakdown []ModuleCost `json:"breakdown,omitempty"`

	// TotalTokens is the aggregate AI-assist token volume across all
	// resolved modules. Carried for callers pricing token usage.
	TotalTokens int64 `json:"total_tokens"`
}
