package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"buildcost/adapters/storage"
	"buildcost/core/catalog"
	"buildcost/core/ratecard"
	"buildcost/core/types"
)

func newTestServer(store storage.Store) *Server {
	return NewServerWithStore("test", catalog.Default(), ratecard.Default(), store)
}

func postEstimate(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

// TestEstimateEndpoint tests the happy path
func TestEstimateEndpoint(t *testing.T) {
	server := newTestServer(nil)

	rec := postEstimate(t, server, `{
		"platform": "both",
		"auth_level": "multi-tenant",
		"quality": "production",
		"modules": ["subscriptions"]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Estimate == nil {
		t.Fatal("missing estimate")
	}
	if !resp.Estimate.PriceMid.Equal(decimal.NewFromInt(6900)) {
		t.Errorf("expected priceMid 6900, got %s", resp.Estimate.PriceMid)
	}
	if resp.Metadata == nil || resp.Metadata.RequestID == "" || resp.Metadata.InputHash == "" {
		t.Errorf("incomplete metadata: %+v", resp.Metadata)
	}
}

// TestEstimateDeterministicHash verifies identical payloads hash
// identically and produce identical estimates
func TestEstimateDeterministicHash(t *testing.T) {
	server := newTestServer(nil)
	body := `{"platform":"web","auth_level":"basic","quality":"mvp","modules":["auth","checkout"]}`

	first := postEstimate(t, server, body)
	second := postEstimate(t, server, body)

	var a, b EstimateResponse
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if a.Metadata.InputHash != b.Metadata.InputHash {
		t.Errorf("input hash not deterministic: %s vs %s", a.Metadata.InputHash, b.Metadata.InputHash)
	}
	if !a.Estimate.PriceMid.Equal(b.Estimate.PriceMid) || a.Estimate.Confidence != b.Estimate.Confidence {
		t.Error("identical requests produced different estimates")
	}
}

// TestEstimateUnknownEnums verifies out-of-set values degrade to
// unknown instead of erroring
func TestEstimateUnknownEnums(t *testing.T) {
	server := newTestServer(nil)

	rec := postEstimate(t, server, `{"platform":"blockchain","auth_level":"psychic","quality":"perfect"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	// All unknown, zero modules: the floor estimate
	if !resp.Estimate.PriceMin.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected floor priceMin 2000, got %s", resp.Estimate.PriceMin)
	}
	if resp.Estimate.Confidence != 17 {
		t.Errorf("expected confidence 17, got %d", resp.Estimate.Confidence)
	}
}

// TestEstimateInvalidJSON verifies malformed payloads return 400
func TestEstimateInvalidJSON(t *testing.T) {
	server := newTestServer(nil)

	rec := postEstimate(t, server, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// TestEstimatePersistence verifies project-scoped requests are stored
func TestEstimatePersistence(t *testing.T) {
	store := storage.NewMemoryStore()
	server := newTestServer(store)

	rec := postEstimate(t, server, `{
		"project_id": "acme-site",
		"platform": "web",
		"auth_level": "basic",
		"quality": "mvp",
		"modules": ["auth"]
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Metadata.StoredID == "" {
		t.Fatal("expected stored id in metadata")
	}

	record, err := store.GetLatest(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "acme-site")
	if err != nil {
		t.Fatalf("stored record not found: %v", err)
	}
	if record.Spec.Platform != types.PlatformWeb {
		t.Errorf("stored spec mismatch: %+v", record.Spec)
	}
}

// TestModulesEndpoint lists the catalog
func TestModulesEndpoint(t *testing.T) {
	server := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/modules", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp ModulesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Modules) != catalog.Default().Len() {
		t.Errorf("expected %d modules, got %d", catalog.Default().Len(), len(resp.Modules))
	}
}

// TestHealthAndVersion covers the supporting endpoints
func TestHealthAndVersion(t *testing.T) {
	server := newTestServer(nil)

	for _, path := range []string{"/health", "/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
