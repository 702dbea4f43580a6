// Package estimate - Assumption generation
// Assumptions are a deterministic rule table, not free text: a fixed
// base set followed by conditions gated on the build spec and the resolved
// module closure.
package estimate

import (
	"fmt"
	"strings"

	"buildcost/core/catalog"
	"buildcost/core/types"
)

// High-risk module triggers
var (
	realtimeModules = map[types.ModuleID]bool{
		"realtime-chat": true,
		"live-updates":  true,
	}
	recurringBillingModules = map[types.ModuleID]bool{
		"subscriptions":     true,
		"recurring-billing": true,
	}
)

// buildAssumptions produces the ordered plain-language caveat list
func buildAssumptions(spec types.BuildSpec, allModules []types.ModuleID, cat *catalog.Catalog, rc types.RateCard) []string {
	assumptions := []string{
		fmt.Sprintf("Estimates assume a blended rate of $%s/hour.", rc.HourlyRate.String()),
		"Client feedback is assumed within 2 business days of each review point.",
		"Requirements are assumed stable once the build starts; scope changes re-open the estimate.",
	}

	switch spec.Platform {
	case types.PlatformMobile:
		assumptions = append(assumptions,
			"Mobile estimates cover a single cross-platform codebase, not separate native apps.")
	case types.PlatformBoth:
		assumptions = append(assumptions,
			"Web and mobile share one backend; the mobile client is assumed cross-platform rather than native.")
	case types.PlatformUnknown:
		assumptions = append(assumptions,
			"Platform is unresolved; the band assumes a mid-range platform mix until confirmed.")
	}

	switch spec.AuthLevel {
	case types.AuthMultiTenant:
		assumptions = append(assumptions,
			"Multi-tenant isolation is assumed at the application layer, not via per-tenant infrastructure.")
	case types.AuthUnknown:
		assumptions = append(assumptions,
			"Authentication needs are unresolved; a mid-tier auth setup is assumed.")
	}

	switch spec.Quality {
	case types.QualityPrototype:
		assumptions = append(assumptions,
			"Prototype quality trades automated test coverage and hardening for speed.")
	case types.QualityProduction:
		assumptions = append(assumptions,
			"Production quality includes automated tests, monitoring hooks, and a hardening pass.")
	case types.QualityUnknown:
		assumptions = append(assumptions,
			"Quality tier is unresolved; MVP-level rigor is assumed.")
	}

	var hasRealtime, hasRecurring, hasAI bool
	for _, id := range allModules {
		if realtimeModules[id] {
			hasRealtime = true
		}
		if recurringBillingModules[id] {
			hasRecurring = true
		}
		if isGenerativeAI(id, cat) {
			hasAI = true
		}
	}

	if hasRealtime {
		assumptions = append(assumptions,
			"Real-time features assume a managed streaming transport; self-hosted infrastructure would change the estimate.")
	}
	if hasRecurring {
		assumptions = append(assumptions,
			"Recurring billing assumes a third-party payment processor; its transaction fees are not included.")
	}
	if hasAI {
		assumptions = append(assumptions,
			"AI features rely on externally metered model usage, billed separately from the build cost.")
	}

	return assumptions
}

// isGenerativeAI matches AI modules by catalog category or id prefix
func isGenerativeAI(id types.ModuleID, cat *catalog.Catalog) bool {
	if strings.HasPrefix(string(id), "ai-") {
		return true
	}
	if entry, ok := cat.Get(id); ok {
		return entry.Category == "ai"
	}
	return false
}
