// Package catalog - Built-in default catalog
package catalog

import "buildcost/core/types"

// Default returns the built-in module catalog used when no catalog file
// is supplied. Hours and risk weights are tuning values maintained by
// the delivery team, not derived figures.
func Default() *Catalog {
	return New([]types.ModuleCatalogEntry{
		{
			ModuleID:    "auth",
			Name:        "Authentication",
			Description: "Sign up, sign in, password reset, session handling",
			Category:    "identity",
			BaseHours:   8,
			BaseTokens:  90000,
			RiskWeight:  1.0,
		},
		{
			ModuleID:     "user-profiles",
			Name:         "User Profiles",
			Description:  "Profile pages, avatars, account settings",
			Category:     "identity",
			BaseHours:    6,
			BaseTokens:   60000,
			RiskWeight:   1.0,
			Dependencies: []types.ModuleID{"auth"},
		},
		{
			ModuleID:     "admin-dashboard",
			Name:         "Admin Dashboard",
			Description:  "Internal CRUD screens and role-gated management views",
			Category:     "operations",
			BaseHours:    10,
			BaseTokens:   110000,
			RiskWeight:   1.1,
			Dependencies: []types.ModuleID{"auth"},
		},
		{
			ModuleID:    "product-catalog",
			Name:        "Product Catalog",
			Description: "Product listings, detail pages, categories",
			Category:    "commerce",
			BaseHours:   8,
			BaseTokens:  80000,
			RiskWeight:  1.1,
		},
		{
			ModuleID:    "checkout",
			Name:        "Checkout",
			Description: "Cart, one-time payment flow, order confirmation",
			Category:    "commerce",
			BaseHours:   4,
			BaseTokens:  50000,
			RiskWeight:  1.3,
		},
		{
			ModuleID:     "subscriptions",
			Name:         "Subscriptions",
			Description:  "Recurring billing plans, upgrades, cancellation flow",
			Category:     "commerce",
			BaseHours:    6,
			BaseTokens:   70000,
			RiskWeight:   1.4,
			Dependencies: []types.ModuleID{"checkout"},
		},
		{
			ModuleID:     "search",
			Name:         "Search",
			Description:  "Full-text search with filters and ranking",
			Category:     "content",
			BaseHours:    8,
			BaseTokens:   70000,
			RiskWeight:   1.2,
			Dependencies: []types.ModuleID{"product-catalog"},
		},
		{
			ModuleID:    "file-uploads",
			Name:        "File Uploads",
			Description: "Upload, storage, and serving of user files",
			Category:    "content",
			BaseHours:   5,
			BaseTokens:  45000,
			RiskWeight:  1.1,
		},
		{
			ModuleID:    "notifications",
			Name:        "Notifications",
			Description: "Email and in-app notification delivery",
			Category:    "messaging",
			BaseHours:   5,
			BaseTokens:  50000,
			RiskWeight:  1.1,
		},
		{
			ModuleID:     "realtime-chat",
			Name:         "Real-Time Chat",
			Description:  "Live messaging between users over a streaming transport",
			Category:     "messaging",
			BaseHours:    14,
			BaseTokens:   150000,
			RiskWeight:   1.5,
			Dependencies: []types.ModuleID{"auth"},
		},
		{
			ModuleID:    "live-updates",
			Name:        "Live Updates",
			Description: "Server-pushed data refresh for dashboards and feeds",
			Category:    "messaging",
			BaseHours:   10,
			BaseTokens:  100000,
			RiskWeight:  1.4,
		},
		{
			ModuleID:     "ai-assistant",
			Name:         "AI Assistant",
			Description:  "Conversational assistant backed by a hosted model",
			Category:     "ai",
			BaseHours:    12,
			BaseTokens:   200000,
			RiskWeight:   1.5,
			Dependencies: []types.ModuleID{"auth"},
		},
		{
			ModuleID:    "ai-content",
			Name:        "AI Content Generation",
			Description: "Generated copy, summaries, or media via a hosted model",
			Category:    "ai",
			BaseHours:   9,
			BaseTokens:  160000,
			RiskWeight:  1.4,
		},
		{
			ModuleID:    "analytics",
			Name:        "Analytics",
			Description: "Event tracking and reporting dashboards",
			Category:    "insights",
			BaseHours:   7,
			BaseTokens:  65000,
			RiskWeight:  1.2,
		},
	})
}
