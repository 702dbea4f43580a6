// Package estimate - Multiplier tables
// Multipliers are exhaustive switches over the closed enum sets, so a
// new enum value fails to compile here instead of falling through
// silently at runtime.
package estimate

import "buildcost/core/types"

// platformMultiplier returns the hours multiplier for a platform
func platformMultiplier(p types.Platform) float64 {
	switch p {
	case types.PlatformWeb:
		return 1.0
	case types.PlatformMobile:
		return 1.3
	case types.PlatformBoth:
		return 1.7
	default:
		return 1.35
	}
}

// authMultiplier returns the hours multiplier for an auth level
func authMultiplier(a types.AuthLevel) float64 {
	switch a {
	case types.AuthNone:
		return 1.0
	case types.AuthBasic:
		return 1.1
	case types.AuthRoles:
		return 1.3
	case types.AuthMultiTenant:
		return 1.5
	default:
		return 1.25
	}
}

// qualityMultiplier returns the hours multiplier for a quality tier
func qualityMultiplier(q types.Quality) float64 {
	switch q {
	case types.QualityPrototype:
		return 0.6
	case types.QualityMVP:
		return 1.0
	case types.QualityProduction:
		return 1.8
	default:
		return 1.0
	}
}

// platformDriverLabel is the cost driver label per platform
func platformDriverLabel(p types.Platform) string {
	switch p {
	case types.PlatformWeb:
		return "Web platform"
	case types.PlatformMobile:
		return "Mobile platform"
	case types.PlatformBoth:
		return "Web + mobile platforms"
	default:
		return "Unresolved platform scope"
	}
}

// authDriverLabel is the cost driver label per auth level
func authDriverLabel(a types.AuthLevel) string {
	switch a {
	case types.AuthNone:
		return "No authentication"
	case types.AuthBasic:
		return "Basic authentication"
	case types.AuthRoles:
		return "Role-based access control"
	case types.AuthMultiTenant:
		return "Multi-tenant authentication"
	default:
		return "Unresolved authentication scope"
	}
}

// qualityDriverLabel is the cost driver label per quality tier
func qualityDriverLabel(q types.Quality) string {
	switch q {
	case types.QualityPrototype:
		return "Prototype quality (savings)"
	case types.QualityMVP:
		return "MVP quality"
	case types.QualityProduction:
		return "Production hardening"
	default:
		return "Unresolved quality tier"
	}
}
