// Package api - Request and response types
package api

import "buildcost/core/types"

// EstimateRequest is the POST /estimate payload
type EstimateRequest struct {
	// ProjectID groups stored estimates; optional. When set and a
	// store is configured, the result is persisted.
	ProjectID string `json:"project_id,omitempty"`

	// Platform is the delivery platform (web, mobile, both)
	Platform string `json:"platform"`

	// AuthLevel is the authentication tier
	AuthLevel string `json:"auth_level"`

	// Quality is the target quality tier
	Quality string `json:"quality"`

	// Modules are the selected module ids
	Modules []string `json:"modules"`
}

// Spec converts the request into an engine build spec. Out-of-set enum
// values map to unknown; the engine treats unknown as a legitimate
// value, not an error.
func (r *EstimateRequest) Spec() types.BuildSpec {
	modules := make([]types.ModuleID, len(r.Modules))
	for i, m := range r.Modules {
		modules[i] = types.ModuleID(m)
	}
	return types.BuildSpec{
		Platform:  types.ParsePlatform(r.Platform),
		AuthLevel: types.ParseAuthLevel(r.AuthLevel),
		Quality:   types.ParseQuality(r.Quality),
		Modules:   modules,
	}
}

// ResponseMetadata describes how a response was produced
type ResponseMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string `json:"request_id"`

	// InputHash is the deterministic hash of the request payload.
	// Identical inputs always produce identical hashes and results.
	InputHash string `json:"input_hash"`

	// EngineVersion is the engine build version
	EngineVersion string `json:"engine_version"`

	// StoredID is the persisted record id, when storage is enabled
	StoredID string `json:"stored_id,omitempty"`

	// DurationMs is the server-side processing time
	DurationMs int64 `json:"duration_ms"`
}

// EstimateResponse is the POST /estimate response body
type EstimateResponse struct {
	// Estimate is the engine result
	Estimate *types.EstimateResult `json:"estimate"`

	// Metadata describes the response
	Metadata *ResponseMetadata `json:"metadata"`
}

// ModulesResponse is the GET /modules response body
type ModulesResponse struct {
	// Modules lists the catalog entries in sorted id order
	Modules []*types.ModuleCatalogEntry `json:"modules"`
}

// ErrorResponse is the error body for all endpoints
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
